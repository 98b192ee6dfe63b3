package entity

// Location місцезнаходження — довідник.
type Location struct {
	ID       string
	Name     string // унікальна
	IsActive bool
}

// Position посада — довідник.
type Position struct {
	ID       string
	Name     string // унікальна
	IsActive bool
}

// ResponsiblePerson матеріально відповідальна особа (МВО).
type ResponsiblePerson struct {
	ID         string
	IPN        string // унікальний
	FullName   string
	PositionID string // може бути порожнім
	LocationID string // може бути порожнім
	IsEmployee bool
	IsActive   bool
}

// Organization організація (юридична особа).
// IsOwn може бути true лише для однієї організації — власної.
type Organization struct {
	ID         string
	Name       string
	ShortName  string
	EDRPOU     string // унікальний
	Address    string
	Director   string
	Accountant string
	IsActive   bool
	IsOwn      bool
}
