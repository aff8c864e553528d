package hal

import (
	"errors"
	"time"
)

const (
	matrixRows = 4
	matrixCols = 4
)

// MatrixLayout maps row/column intersections to key runes.
type MatrixLayout [matrixRows][matrixCols]rune

// DefaultMatrixLayout is the legend of the common 4x4 membrane keypad:
// digits, A-D on the right column, '*' and '#' flanking the zero.
var DefaultMatrixLayout = MatrixLayout{
	{'1', '2', '3', 'A'},
	{'4', '5', '6', 'B'},
	{'7', '8', '9', 'C'},
	{'*', '0', '#', 'D'},
}

// MatrixKeypad scans a row/column switch matrix.
//
// Row pins are driven as outputs, idle high; column pins are pull-up
// inputs. A pressed key shorts its row to its column, so a column reads
// low while its row is driven low. A key transition is reported only
// after two consecutive scans agree, which debounces the membrane
// contacts at the scan period.
type MatrixKeypad struct {
	rows   [matrixRows]GPIOPin
	cols   [matrixCols]GPIOPin
	layout MatrixLayout
	ch     chan KeyEvent

	prev [matrixRows][matrixCols]bool // raw sample from the previous scan
	down [matrixRows][matrixCols]bool // debounced key state
}

// NewMatrixKeypad configures the given pins and returns a scanner.
// The caller owns the scan cadence: either call Scan directly or start
// Run in a goroutine.
func NewMatrixKeypad(rows, cols []GPIOPin, layout MatrixLayout) (*MatrixKeypad, error) {
	if len(rows) != matrixRows || len(cols) != matrixCols {
		return nil, errors.New("keypad: need 4 row and 4 column pins")
	}

	k := &MatrixKeypad{layout: layout, ch: make(chan KeyEvent, 16)}
	for i, p := range rows {
		if p == nil {
			return nil, errors.New("keypad: nil row pin")
		}
		if err := p.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
			return nil, err
		}
		if err := p.Write(true); err != nil {
			return nil, err
		}
		k.rows[i] = p
	}
	for i, p := range cols {
		if p == nil {
			return nil, errors.New("keypad: nil column pin")
		}
		if err := p.Configure(GPIOModeInput, GPIOPullUp); err != nil {
			return nil, err
		}
		k.cols[i] = p
	}
	return k, nil
}

func (k *MatrixKeypad) Events() <-chan KeyEvent { return k.ch }

// Scan performs one pass over the matrix and emits debounced key
// transitions. Events are dropped when the channel is full.
func (k *MatrixKeypad) Scan() {
	var raw [matrixRows][matrixCols]bool

	for r := range k.rows {
		_ = k.rows[r].Write(false)
		for c := range k.cols {
			level, err := k.cols[c].Read()
			// A read failure counts as "not pressed"; the next
			// scan gets another chance.
			raw[r][c] = err == nil && !level
		}
		_ = k.rows[r].Write(true)
	}

	for r := 0; r < matrixRows; r++ {
		for c := 0; c < matrixCols; c++ {
			if raw[r][c] != k.prev[r][c] || raw[r][c] == k.down[r][c] {
				continue
			}
			k.down[r][c] = raw[r][c]
			select {
			case k.ch <- KeyEvent{Rune: k.layout[r][c], Press: raw[r][c]}:
			default:
			}
		}
	}
	k.prev = raw
}

// Run scans at the given period until stop is closed.
func (k *MatrixKeypad) Run(period time.Duration, stop <-chan struct{}) {
	if period <= 0 {
		period = 5 * time.Millisecond
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	defer close(k.ch)

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			k.Scan()
		}
	}
}
