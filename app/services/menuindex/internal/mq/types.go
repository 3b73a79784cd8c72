package mq

type MenuChunkRow struct {
	ID        int64  `json:"id,string"`
	Section   string `json:"section"`
	Chunk     string `json:"chunk"`
	UpdatedAt string `json:"updated_at"`
}

type MenuChunkMessage struct {
	Data      []MenuChunkRow    `json:"data"`
	Database  string            `json:"database"`
	Es        int64             `json:"es"`
	Gtid      string            `json:"gtid"`
	ID        int64             `json:"id"`
	IsDdl     bool              `json:"isDdl"`
	MysqlType map[string]string `json:"mysqlType"`
	Old       []map[string]any  `json:"old"`
	PkNames   []string          `json:"pkNames"`
	SQL       string            `json:"sql"`
	SQLType   map[string]int    `json:"sqlType"`
	Table     string            `json:"table"`
	Ts        int64             `json:"ts"`
	Type      string            `json:"type"`
}
