package models

import "time"

type Review struct {
	Name    string    `json:"name"`
	Email   string    `json:"email,omitempty"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}
