// Package titles maps accumulated XP to the player's display title.
package titles

// Tier is one rung of the title ladder.
type Tier struct {
	XP    int    `json:"xp"`
	Title string `json:"title"`
}

// tiers is ascending by XP and starts at 0.
var tiers = []Tier{
	{XP: 0, Title: "Newbie"},
	{XP: 50, Title: "Math Cadet"},
	{XP: 120, Title: "Number Ninja"},
	{XP: 200, Title: "Bridge Builder"},
	{XP: 300, Title: "Team Leader"},
	{XP: 450, Title: "Math Hero"},
	{XP: 600, Title: "Grand Master"},
	{XP: 800, Title: "Legend"},
}

// ForXP returns the title of the highest tier reached.
func ForXP(xp int) string {
	current := tiers[0]
	for _, tier := range tiers {
		if xp < tier.XP {
			break
		}
		current = tier
	}
	return current.Title
}

// Next returns the first tier above xp. ok is false once the last tier
// has been reached.
func Next(xp int) (tier Tier, ok bool) {
	for _, t := range tiers {
		if xp < t.XP {
			return t, true
		}
	}
	return Tier{}, false
}

// All returns a copy of the title ladder.
func All() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}
