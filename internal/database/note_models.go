package database

import "time"

// NoteRecord 笔记记录
// 与目录存储一一对应：Name 相当于文件名，Text 相当于文件内容
type NoteRecord struct {
	Name      string    `gorm:"primaryKey;size:255" json:"name"` // 笔记名称，主键
	Text      string    `gorm:"type:text;not null" json:"text"`  // 笔记全文
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定NoteRecord模型对应的数据库表名
func (NoteRecord) TableName() string {
	return "notes"
}
