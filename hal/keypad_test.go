package hal

import "testing"

// fakeMatrix emulates the electrical behavior of a 4x4 membrane keypad:
// a pressed switch shorts its row line to its column line.
type fakeMatrix struct {
	rowLevel [matrixRows]bool
	pressed  map[[2]int]bool
}

func newFakeMatrix() *fakeMatrix {
	m := &fakeMatrix{pressed: make(map[[2]int]bool)}
	for i := range m.rowLevel {
		m.rowLevel[i] = true
	}
	return m
}

func (m *fakeMatrix) press(r, c int)   { m.pressed[[2]int{r, c}] = true }
func (m *fakeMatrix) release(r, c int) { delete(m.pressed, [2]int{r, c}) }

type fakeRowPin struct {
	m   *fakeMatrix
	idx int
}

func (p *fakeRowPin) Name() string                       { return "ROW" }
func (p *fakeRowPin) Caps() GPIOCaps                     { return GPIOCapOutput }
func (p *fakeRowPin) Configure(GPIOMode, GPIOPull) error { return nil }
func (p *fakeRowPin) Read() (bool, error)                { return p.m.rowLevel[p.idx], nil }

func (p *fakeRowPin) Write(level bool) error {
	p.m.rowLevel[p.idx] = level
	return nil
}

type fakeColPin struct {
	m   *fakeMatrix
	idx int
}

func (p *fakeColPin) Name() string                       { return "COL" }
func (p *fakeColPin) Caps() GPIOCaps                     { return GPIOCapInput | GPIOCapPullUp }
func (p *fakeColPin) Configure(GPIOMode, GPIOPull) error { return nil }
func (p *fakeColPin) Write(bool) error                   { return ErrNotImplemented }

func (p *fakeColPin) Read() (bool, error) {
	for r := 0; r < matrixRows; r++ {
		if p.m.pressed[[2]int{r, p.idx}] && !p.m.rowLevel[r] {
			return false, nil
		}
	}
	return true, nil
}

func newTestKeypad(t *testing.T) (*MatrixKeypad, *fakeMatrix) {
	t.Helper()

	m := newFakeMatrix()
	rows := make([]GPIOPin, matrixRows)
	cols := make([]GPIOPin, matrixCols)
	for i := range rows {
		rows[i] = &fakeRowPin{m: m, idx: i}
	}
	for i := range cols {
		cols[i] = &fakeColPin{m: m, idx: i}
	}

	k, err := NewMatrixKeypad(rows, cols, DefaultMatrixLayout)
	if err != nil {
		t.Fatalf("NewMatrixKeypad() err = %v", err)
	}
	return k, m
}

func tryEvent(k *MatrixKeypad) (KeyEvent, bool) {
	select {
	case ev := <-k.Events():
		return ev, true
	default:
		return KeyEvent{}, false
	}
}

func TestMatrixKeypadMapsLayout(t *testing.T) {
	cases := []struct {
		row, col int
		want     rune
	}{
		{0, 0, '1'},
		{1, 3, 'B'},
		{3, 0, '*'},
		{3, 2, '#'},
		{3, 3, 'D'},
	}

	for _, tc := range cases {
		k, m := newTestKeypad(t)

		m.press(tc.row, tc.col)
		k.Scan()
		k.Scan()

		ev, ok := tryEvent(k)
		if !ok {
			t.Fatalf("press (%d,%d): no event after two scans", tc.row, tc.col)
		}
		if ev.Rune != tc.want || !ev.Press {
			t.Fatalf("press (%d,%d) = {%q press=%v}, want {%q press=true}", tc.row, tc.col, ev.Rune, ev.Press, tc.want)
		}

		m.release(tc.row, tc.col)
		k.Scan()
		k.Scan()

		ev, ok = tryEvent(k)
		if !ok {
			t.Fatalf("release (%d,%d): no event after two scans", tc.row, tc.col)
		}
		if ev.Rune != tc.want || ev.Press {
			t.Fatalf("release (%d,%d) = {%q press=%v}, want {%q press=false}", tc.row, tc.col, ev.Rune, ev.Press, tc.want)
		}
	}
}

func TestMatrixKeypadDebouncesGlitches(t *testing.T) {
	k, m := newTestKeypad(t)

	// A one-scan contact bounce must not register.
	m.press(2, 1)
	k.Scan()
	m.release(2, 1)
	k.Scan()
	k.Scan()

	if ev, ok := tryEvent(k); ok {
		t.Fatalf("got event %+v for one-scan glitch, want none", ev)
	}
}

func TestMatrixKeypadHoldEmitsOnce(t *testing.T) {
	k, m := newTestKeypad(t)

	m.press(1, 1)
	for i := 0; i < 10; i++ {
		k.Scan()
	}

	ev, ok := tryEvent(k)
	if !ok || ev.Rune != '5' || !ev.Press {
		t.Fatalf("held key event = %+v ok=%v, want single '5' press", ev, ok)
	}
	if ev, ok := tryEvent(k); ok {
		t.Fatalf("held key emitted extra event %+v", ev)
	}
}

func TestMatrixKeypadRollover(t *testing.T) {
	k, m := newTestKeypad(t)

	m.press(0, 0)
	k.Scan()
	k.Scan()
	m.press(0, 1)
	k.Scan()
	k.Scan()

	first, ok := tryEvent(k)
	if !ok || first.Rune != '1' {
		t.Fatalf("first event = %+v ok=%v, want '1' press", first, ok)
	}
	second, ok := tryEvent(k)
	if !ok || second.Rune != '2' || !second.Press {
		t.Fatalf("second event = %+v ok=%v, want '2' press", second, ok)
	}
}

func TestNewMatrixKeypadRejectsBadPins(t *testing.T) {
	m := newFakeMatrix()
	rows := []GPIOPin{&fakeRowPin{m: m}, &fakeRowPin{m: m}, &fakeRowPin{m: m}, &fakeRowPin{m: m}}

	if _, err := NewMatrixKeypad(rows, rows[:3], DefaultMatrixLayout); err == nil {
		t.Fatalf("NewMatrixKeypad() err = nil with 3 columns, want error")
	}
	cols := []GPIOPin{&fakeColPin{m: m}, nil, &fakeColPin{m: m}, &fakeColPin{m: m}}
	if _, err := NewMatrixKeypad(rows, cols, DefaultMatrixLayout); err == nil {
		t.Fatalf("NewMatrixKeypad() err = nil with nil pin, want error")
	}
}
