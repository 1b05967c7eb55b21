package domain

import "time"

// ProjectCharter is one "Termo de Abertura de Projeto" record. The gorm tags
// describe the relational row; the json tags are the public wire names.
type ProjectCharter struct {
	ID                     int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	NomeProjeto            string    `gorm:"type:text;not null" json:"nomeProjeto"`
	Objetivo               string    `gorm:"type:text;not null" json:"objetivo"`
	Justificativa          string    `gorm:"type:text;not null" json:"justificativa"`
	StakeholdersPrincipais string    `gorm:"type:text;not null" json:"stakeholdersPrincipais"`
	GerenteProjeto         string    `gorm:"type:text;not null" json:"gerenteProjeto"`
	Premissas              string    `gorm:"type:text;not null" json:"premissas"`
	Restricoes             string    `gorm:"type:text;not null" json:"restricoes"`
	PrincipaisEntregas     string    `gorm:"type:text;not null" json:"principaisEntregas"`
	OrcamentoEstimado      float64   `gorm:"not null" json:"orcamentoEstimado"`
	CronogramaInicial      time.Time `gorm:"not null" json:"cronogramaInicial"`
	AutorizacaoFormal      bool      `gorm:"not null;default:false" json:"autorizacaoFormal"`
	CreatedAt              time.Time `gorm:"index:idx_charters_created_at" json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

func (ProjectCharter) TableName() string { return "termos_abertura_projeto" }
