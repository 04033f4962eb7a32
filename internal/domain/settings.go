package domain

import "time"

// Category and Material are the two lookup tables behind the settings screens.
// Items and invoices reference their names as free text, so deleting one never
// cascades.

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Material struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
