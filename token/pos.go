package token

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// PosDoc maps rune offsets in a document to lines and columns.
// Newline offsets are computed on first use.
type PosDoc struct {
	d    string
	once sync.Once
	n    []int
}

func NewPosDoc(d string) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) scan() {
	i := 0
	for _, r := range p.d {
		if r == '\n' {
			p.n = append(p.n, i)
		}
		i++
	}
}

// LineCol returns the zero based line and column of rune offset off.
func (p *PosDoc) LineCol(off int) (int, int) {
	p.once.Do(p.scan)
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

// sample returns up to n runes either side of rune offset i.
func (p *PosDoc) sample(i, n int) string {
	start, end := -1, len(p.d)
	j := 0
	for off := range p.d {
		if j == max(0, i-n) && start == -1 {
			start = off
		}
		if j == i+n {
			end = off
			break
		}
		j++
	}
	if start == -1 {
		return ""
	}
	return p.d[start:end]
}

// Pos is a position in a document, counted in runes from its start.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && p.D.d != "" {
		sample = p.D.sample(p.I, 5)
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
