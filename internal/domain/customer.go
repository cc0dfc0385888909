package domain

type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
}
