package models

import "github.com/google/uuid"

// Goal is a single user-defined task inside a category. Month is set only
// while the goal is completed; unchecking always clears it.
type Goal struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Month     *Month    `json:"month,omitempty"`
}

// Category is one of the fixed life areas with its ordered goal list.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Goals []Goal `json:"goals"`
}

// Collection is the full persisted goal state.
type Collection struct {
	Categories []Category `json:"categories"`
}

// Clone returns a deep copy. Mutation operations work on copies so callers
// never observe partial in-place changes.
func (c Collection) Clone() Collection {
	out := Collection{Categories: make([]Category, len(c.Categories))}
	for i, cat := range c.Categories {
		copied := cat
		copied.Goals = make([]Goal, len(cat.Goals))
		for j, g := range cat.Goals {
			copied.Goals[j] = g
			if g.Month != nil {
				m := *g.Month
				copied.Goals[j].Month = &m
			}
		}
		out.Categories[i] = copied
	}
	return out
}

// WellFormed reports whether a deserialized collection has the shape the
// dashboard can work with: non-empty category ids and titles, goal ids set,
// and months (when present) valid.
func (c Collection) WellFormed() bool {
	if len(c.Categories) == 0 {
		return false
	}
	for _, cat := range c.Categories {
		if cat.ID == "" || cat.Title == "" {
			return false
		}
		for _, g := range cat.Goals {
			if g.ID == uuid.Nil {
				return false
			}
			if g.Month != nil && !g.Month.Valid() {
				return false
			}
		}
	}
	return true
}

// Normalize repairs the completed/month invariant on loaded data: a goal
// that is not completed must not carry a month.
func (c *Collection) Normalize() {
	for i := range c.Categories {
		for j := range c.Categories[i].Goals {
			g := &c.Categories[i].Goals[j]
			if !g.Completed {
				g.Month = nil
			}
		}
	}
}

// Find returns pointers into the collection for the addressed goal, or nil
// when either id is unknown.
func (c *Collection) Find(categoryID string, goalID uuid.UUID) (*Category, *Goal) {
	for i := range c.Categories {
		if c.Categories[i].ID != categoryID {
			continue
		}
		cat := &c.Categories[i]
		for j := range cat.Goals {
			if cat.Goals[j].ID == goalID {
				return cat, &cat.Goals[j]
			}
		}
		return cat, nil
	}
	return nil, nil
}

// DefaultCollection is the seed used on first load and whenever the stored
// collection cannot be read back.
func DefaultCollection() Collection {
	return Collection{Categories: []Category{
		seedCategory("health", "Health", "💪", "#34d399",
			"Drink 2L of water every day",
			"Run a 10k"),
		seedCategory("career", "Career", "💼", "#60a5fa",
			"Learn a new skill",
			"Ask for that promotion"),
		seedCategory("finances", "Finances", "💰", "#fbbf24",
			"Build a 3-month emergency fund",
			"Track every expense for a month"),
		seedCategory("relationships", "Relationships", "❤️", "#f87171",
			"Call my parents every week",
			"Plan a trip with friends"),
		seedCategory("growth", "Personal Growth", "🌱", "#a78bfa",
			"Read 12 books",
			"Keep a journal"),
		seedCategory("recreation", "Recreation", "🎨", "#f472b6",
			"Pick up a creative hobby",
			"Spend one weekend offline"),
		seedCategory("community", "Community", "🤝", "#2dd4bf",
			"Volunteer once a month",
			"Donate things I no longer use"),
	}}
}

func seedCategory(id, title, icon, color string, goals ...string) Category {
	cat := Category{ID: id, Title: title, Icon: icon, Color: color}
	for _, text := range goals {
		cat.Goals = append(cat.Goals, Goal{ID: uuid.New(), Text: text})
	}
	return cat
}
