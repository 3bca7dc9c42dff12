package review

import "time"

type Review struct {
	ID          uint      `json:"id"`
	ProductID   uint      `json:"-"`
	Date        time.Time `json:"date"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type CreateParams struct {
	ProductID   uint
	Name        string
	Description string
}
