package models

import "time"

type Stone struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(100);not null"`
	StoneType   string  `gorm:"type:varchar(50);not null"`
	Description string  `gorm:"type:text"`
	MainColor   string  `gorm:"type:varchar(50)"`
	Image       *string `gorm:"type:varchar(255)"`
}

func (Stone) TableName() string { return "stones" }

// StoneComment rows cascade with their stone.
type StoneComment struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	StoneID    uint   `gorm:"not null;index"`
	AuthorName string `gorm:"type:varchar(100);not null"`
	Text       string `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

func (StoneComment) TableName() string { return "stone_comments" }

// StoneFAQ rows cascade with their stone.
type StoneFAQ struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	StoneID  uint   `gorm:"not null;index"`
	Question string `gorm:"type:varchar(255);not null"`
	Answer   string `gorm:"type:text"`
}

func (StoneFAQ) TableName() string { return "stone_faqs" }
