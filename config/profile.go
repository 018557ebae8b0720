package config

import "github.com/EricWal/hr-app/domain"

// DefaultProfile is the employee submitting from this installation when the
// config names none.
func DefaultProfile() domain.Employee {
	return domain.Employee{
		Name:       "عبيد خالد",
		Role:       "موظف اداري",
		Department: "إدارة المشاريع",
	}
}
