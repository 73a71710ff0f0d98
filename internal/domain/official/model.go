package official

import "fmt"

// Official is a match official such as an umpire or referee.
type Official struct {
	ID   int64
	Name string
	Role string
}

func (o Official) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("official name is required")
	}

	return nil
}
