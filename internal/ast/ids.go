package ast

type (
	// идентификаторы узлов
	NodeID uint32
	// сущности вселенной типов
	TypeID   uint32
	SymbolID uint32
)

const (
	NoNodeID   NodeID   = 0
	NoTypeID   TypeID   = 0
	NoSymbolID SymbolID = 0
)

func (id NodeID) IsValid() bool   { return id != NoNodeID }
func (id TypeID) IsValid() bool   { return id != NoTypeID }
func (id SymbolID) IsValid() bool { return id != NoSymbolID }
