package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестный код - на первое время
	UnknownCode Code = 0

	// Конфигурационные (время построения движка)
	ConfInfo             Code = 1000
	ConfBadPattern       Code = 1001
	ConfMarkerUnresolved Code = 1002
	ConfBadManifest      Code = 1003

	// Движок подавления (время обработки юнита)
	SupInfo          Code = 2000
	SupScanFailed    Code = 2001
	SupCacheSchema   Code = 2002
	SupBadFixture    Code = 2003
	SupBadStreamLine Code = 2004
)

// хостовые диагностики проходят сквозь гейт со своими кодами;
// всё, что не попало в наши диапазоны, печатается как HOST.
var codeDescription = map[Code]string{
	UnknownCode:          "unknown diagnostic",
	ConfInfo:             "configuration note",
	ConfBadPattern:       "filter pattern does not compile",
	ConfMarkerUnresolved: "suppression marker type not found",
	ConfBadManifest:      "manifest cannot be read",
	SupInfo:              "suppression note",
	SupScanFailed:        "unit scan failed",
	SupCacheSchema:       "scan cache schema mismatch",
	SupBadFixture:        "unit fixture cannot be decoded",
	SupBadStreamLine:     "diagnostic stream line cannot be decoded",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("CONF%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SUP%04d", ic)
	}
	return fmt.Sprintf("HOST%04d", int(c))
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
