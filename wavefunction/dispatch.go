package wavefunction

import "fmt"

// kernel is one fully specialized evaluation path: a fixed Shape, Domain and
// Algorithm. NewEvaluator resolves the two kernels of its Shape × Domain once,
// so a call is an array index plus an indirect call, with no flag tests.
type kernel func(e *Evaluator, n int, x any) (Result, error)

// realCore computes ψ over real points for one algorithm.
type realCore func(e *Evaluator, n int, xs []float64, keepAll bool) ([]float64, error)

// complexCore computes ψ over complex points for one algorithm.
type complexCore func(e *Evaluator, n int, zs []complex128, keepAll bool) ([]complex128, error)

var (
	realCores    = [algorithmCount]realCore{Recurrence: realRecurrence, Table: realTable}
	complexCores = [algorithmCount]complexCore{Recurrence: complexRecurrence, Table: complexTable}
)

// selectKernels returns the Recurrence and Table kernels for shape × domain.
func selectKernels(shape Shape, domain Domain) [algorithmCount]kernel {
	var ks [algorithmCount]kernel
	for alg := Algorithm(0); alg < algorithmCount; alg++ {
		if domain == Complex {
			ks[alg] = complexKernel(shape, complexCores[alg])
		} else {
			ks[alg] = realKernel(shape, realCores[alg])
		}
	}

	return ks
}

// realKernel binds the input extractor of shape to core.
func realKernel(shape Shape, core realCore) kernel {
	points := realPoints
	if shape.SinglePoint() {
		points = realPoint
	}
	keepAll := !shape.SingleMode()

	return func(e *Evaluator, n int, x any) (Result, error) {
		xs, err := points(x)
		if err != nil {
			return Result{}, err
		}
		vals, err := core(e, n, xs, keepAll)
		if err != nil {
			return Result{}, err
		}

		return newRealResult(shape, n, len(xs), vals), nil
	}
}

// complexKernel binds the input extractor of shape to core.
func complexKernel(shape Shape, core complexCore) kernel {
	points := complexPoints
	if shape.SinglePoint() {
		points = complexPoint
	}
	keepAll := !shape.SingleMode()

	return func(e *Evaluator, n int, x any) (Result, error) {
		zs, err := points(x)
		if err != nil {
			return Result{}, err
		}
		vals, err := core(e, n, zs, keepAll)
		if err != nil {
			return Result{}, err
		}

		return newComplexResult(shape, n, len(zs), vals), nil
	}
}

// ---------- input extractors ----------
//
// Each extractor accepts exactly one Go type. Anything else is a type
// conflict: in particular a complex point is never truncated to its real
// part, and a real point is never silently promoted to complex.

// realPoint accepts a float64.
func realPoint(x any) ([]float64, error) {
	v, ok := x.(float64)
	if !ok {
		return nil, inputConflict("float64", x)
	}

	return []float64{v}, nil
}

// realPoints accepts a non-empty []float64.
func realPoints(x any) ([]float64, error) {
	v, ok := x.([]float64)
	if !ok {
		return nil, inputConflict("[]float64", x)
	}
	if len(v) == 0 {
		return nil, waveErrorf("points", ErrInvalidArgument)
	}

	return v, nil
}

// complexPoint accepts a complex128.
func complexPoint(x any) ([]complex128, error) {
	v, ok := x.(complex128)
	if !ok {
		return nil, inputConflict("complex128", x)
	}

	return []complex128{v}, nil
}

// complexPoints accepts a non-empty []complex128.
func complexPoints(x any) ([]complex128, error) {
	v, ok := x.([]complex128)
	if !ok {
		return nil, inputConflict("[]complex128", x)
	}
	if len(v) == 0 {
		return nil, waveErrorf("points", ErrInvalidArgument)
	}

	return v, nil
}

// inputConflict reports the expected and received input types.
func inputConflict(want string, got any) error {
	return fmt.Errorf("x: want %s, got %T: %w", want, got, ErrTypeConflict)
}

// ---------- algorithm cores ----------

func realRecurrence(e *Evaluator, n int, xs []float64, keepAll bool) ([]float64, error) {
	a, err := e.fetch(artifactKey{order: n, alg: Recurrence})
	if err != nil {
		return nil, err
	}

	return recurrenceReal(a.ladder[:n], xs, keepAll), nil
}

func realTable(e *Evaluator, n int, xs []float64, keepAll bool) ([]float64, error) {
	if err := e.checkTableOrder(n); err != nil {
		return nil, err
	}
	a, err := e.fetch(artifactKey{order: n, alg: Table})
	if err != nil {
		return nil, err
	}

	return tableReal(a, n, xs, keepAll)
}

func complexRecurrence(e *Evaluator, n int, zs []complex128, keepAll bool) ([]complex128, error) {
	a, err := e.fetch(artifactKey{order: n, alg: Recurrence})
	if err != nil {
		return nil, err
	}

	return recurrenceComplex(a.ladder[:n], zs, keepAll), nil
}

func complexTable(e *Evaluator, n int, zs []complex128, keepAll bool) ([]complex128, error) {
	if err := e.checkTableOrder(n); err != nil {
		return nil, err
	}
	a, err := e.fetch(artifactKey{order: n, alg: Table})
	if err != nil {
		return nil, err
	}

	return tableComplex(a, n, zs, keepAll)
}
