// Package database 提供 sqlite 存储驱动使用的模型和连接初始化
package database

// 具体的模型定义：
// - note_models.go: 笔记模型（NoteRecord）
