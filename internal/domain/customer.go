package domain

import "fmt"

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer %s: %s (%s)", c.ID, c.Name, c.Email)
}
