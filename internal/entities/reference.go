package entities

import "time"

// AlphabetLetter stores the upper-case form; the lower case is derived.
type AlphabetLetter struct {
	ID        uint   `gorm:"primaryKey"`
	Letter    string `gorm:"size:2;not null;uniqueIndex"`
	ImageURL  string `gorm:"size:500"`
	AudioURL  string `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time

	NounWords []NounWord `gorm:"foreignKey:AlphabetLetterID;constraint:OnDelete:CASCADE"`
}

type NounWord struct {
	ID               uint   `gorm:"primaryKey"`
	AlphabetLetterID uint   `gorm:"not null;index"`
	Word             string `gorm:"size:200;not null"`
	Translation      string `gorm:"size:200"`
	ImageURL         string `gorm:"size:500"`
	AudioURL         string `gorm:"size:500"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type PartOfSpeech struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	FunctionWords []FunctionWord `gorm:"foreignKey:PartOfSpeechID;constraint:OnDelete:CASCADE"`
}

// TableName avoids the "part_of_speeches" pluralisation.
func (PartOfSpeech) TableName() string {
	return "parts_of_speech"
}

type FunctionWord struct {
	ID             uint   `gorm:"primaryKey"`
	PartOfSpeechID uint   `gorm:"not null;index"`
	Word           string `gorm:"size:200;not null"`
	Translation    string `gorm:"size:200"`
	Example        string `gorm:"size:1000"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PronunciationCategory struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"size:1000"`
	ImageURL    string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Words []WordItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type WordItem struct {
	ID            uint   `gorm:"primaryKey"`
	CategoryID    uint   `gorm:"not null;index"`
	Word          string `gorm:"size:200;not null"`
	Transcription string `gorm:"size:200"`
	AudioURL      string `gorm:"size:500"`
	ImageURL      string `gorm:"size:500"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type MainQuestion struct {
	ID          uint   `gorm:"primaryKey"`
	Question    string `gorm:"size:500;not null"`
	Translation string `gorm:"size:500"`
	AudioURL    string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Words []MainQuestionWord `gorm:"foreignKey:MainQuestionID;constraint:OnDelete:CASCADE"`
}

type MainQuestionWord struct {
	ID             uint   `gorm:"primaryKey"`
	MainQuestionID uint   `gorm:"not null;index"`
	Word           string `gorm:"size:200;not null"`
	Translation    string `gorm:"size:200"`
	Example        string `gorm:"size:1000"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EnglishName groups male and female given names (e.g. "Popular names").
type EnglishName struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"size:1000"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	MaleNames   []MaleName   `gorm:"foreignKey:EnglishNameID;constraint:OnDelete:CASCADE"`
	FemaleNames []FemaleName `gorm:"foreignKey:EnglishNameID;constraint:OnDelete:CASCADE"`
}

type MaleName struct {
	ID            uint   `gorm:"primaryKey"`
	EnglishNameID uint   `gorm:"not null;index"`
	Name          string `gorm:"size:100;not null"`
	Pronunciation string `gorm:"size:200"`
	Meaning       string `gorm:"size:500"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type FemaleName struct {
	ID            uint   `gorm:"primaryKey"`
	EnglishNameID uint   `gorm:"not null;index"`
	Name          string `gorm:"size:100;not null"`
	Pronunciation string `gorm:"size:200"`
	Meaning       string `gorm:"size:500"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
