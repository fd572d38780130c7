package notify

// MaxVisible bounds how many notifications stay on screen at once.
const MaxVisible = 3

// Queue keeps the newest notifications first and never grows past
// MaxVisible entries; pushing a fourth drops the oldest.
type Queue struct {
	items []Notification
}

func (q *Queue) Push(n Notification) {
	q.items = append([]Notification{n}, q.items...)
	if len(q.items) > MaxVisible {
		q.items = q.items[:MaxVisible]
	}
}

// Dismiss removes the entry with the given id. Dismissing an id that
// already expired or was never queued is a no-op.
func (q *Queue) Dismiss(id string) {
	for i := range q.items {
		if q.items[i].ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

func (q *Queue) Items() []Notification {
	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) Len() int {
	return len(q.items)
}
