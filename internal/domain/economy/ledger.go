package economy

// Gold is signed: upkeep may drive the treasury below zero and nothing here
// clamps it.
type Gold = int64

type Ledger struct {
	gold Gold
}

func NewLedger(start Gold) *Ledger {
	return &Ledger{gold: start}
}

func (l *Ledger) Balance() Gold { return l.gold }

func (l *Ledger) CanAfford(cost Gold) bool {
	return l.gold >= cost
}

func (l *Ledger) Debit(amount Gold) Gold {
	l.gold -= amount
	return l.gold
}
