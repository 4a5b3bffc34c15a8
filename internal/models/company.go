package models

// Company is a customer organization. Users point at it through a nullable
// empresa_id; deleting a company that still has users is rejected by the
// foreign key rather than cascaded.
type Company struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"column:nombre;size:200;not null" json:"nombre"`
}

func (Company) TableName() string { return "empresa" }
