package models

type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Owner carries the patient and doctor a row belongs to.
type Owner struct {
	PatientID int64
	DoctorID  int64
}
