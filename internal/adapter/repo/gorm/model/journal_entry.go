package model

import "time"

const TableNameJournalEntry = "journal_entries"

type JournalEntry struct {
	Seq        int64     `gorm:"column:seq;primaryKey;autoIncrement:true" json:"seq"`
	EntryID    string    `gorm:"column:entry_id;not null;uniqueIndex" json:"entry_id"`
	Kind       string    `gorm:"column:kind;not null;index" json:"kind"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null;index" json:"occurred_at"`
	Payload    []byte    `gorm:"column:payload;type:jsonb" json:"payload"`
}

func (*JournalEntry) TableName() string {
	return TableNameJournalEntry
}
