package entity

// Company is the organization an employee belongs to.
// Names are stored lowercased and referenced by employees.company.
type Company struct {
	ID   int64
	Name string
}
