package domain

type Task struct {
	ID        int
	Text      string
	Completed int // persisted as 0/1
	UserID    int
}
