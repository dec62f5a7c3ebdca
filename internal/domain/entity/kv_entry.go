package entity

// KVEntry is one row of the flat string-to-string namespace backing the
// credential store.
type KVEntry struct {
	Key   string `gorm:"type:varchar(255);primaryKey" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
