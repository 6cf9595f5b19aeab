package diag

import (
	"slices"
)

// Bag accumulates diagnostics up to a fixed limit. It is the sink-side
// container: the gate writes forwarded diagnostics here, formatters read
// them back out.
type Bag struct {
	items []Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   uint16(max),
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 { return b.max }
func (b *Bag) Len() int    { return len(b.items) }

func (b *Bag) HasErrors() bool {
	return b.hasAtLeast(SevError)
}

func (b *Bag) HasWarnings() bool {
	return b.hasAtLeast(SevWarning)
}

func (b *Bag) hasAtLeast(sev Severity) bool {
	for i := range b.items {
		if b.items[i].Severity >= sev {
			return true
		}
	}
	return false
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if uint16(newTotal) > b.max {
		b.max = uint16(newTotal)
	}
	b.items = append(b.items, other.items...)
}

// Sort сортирует диагностики по: file, start, end, severity (desc), code (asc)
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(a, c Diagnostic) int {
		if a.Primary.File != c.Primary.File {
			return cmpU32(uint32(a.Primary.File), uint32(c.Primary.File))
		}
		if a.Primary.Start != c.Primary.Start {
			return cmpU32(a.Primary.Start, c.Primary.Start)
		}
		if a.Primary.End != c.Primary.End {
			return cmpU32(a.Primary.End, c.Primary.End)
		}
		if a.Severity != c.Severity {
			// Error раньше Warning раньше Info
			if a.Severity > c.Severity {
				return -1
			}
			return 1
		}
		if a.Code == c.Code {
			return 0
		}
		if a.Code.ID() < c.Code.ID() {
			return -1
		}
		return 1
	})
}

func cmpU32(a, b uint32) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Dedup убирает дубликаты по ключу Code+Primary. Работает на любом
// порядке, но после Sort результат детерминирован.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span string
	}
	seen := make(map[key]struct{}, len(b.items))
	kept := b.items[:0]
	for _, d := range b.items {
		k := key{code: d.Code, span: d.Primary.String()}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, d)
	}
	b.items = kept
}
