package models

// RecipesPage is one page of catalog results together with the paging
// metadata reported by the remote service.
type RecipesPage struct {
	Recipes []Recipe `json:"recipes"`
	Total   int      `json:"total"`
	Skip    int      `json:"skip"`
	Limit   int      `json:"limit"`
}

// TotalPages returns ceil(Total/Limit). A page with a non-positive limit
// counts as a single page.
func (p RecipesPage) TotalPages() int {
	if p.Limit <= 0 {
		if p.Total > 0 {
			return 1
		}
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}

// Prepend inserts a freshly created recipe at the front of the local copy.
// Total keeps the server-reported count.
func (p *RecipesPage) Prepend(r Recipe) {
	p.Recipes = append([]Recipe{r}, p.Recipes...)
}

// Replace swaps the recipe with the same ID for r. It reports whether a
// recipe was replaced.
func (p *RecipesPage) Replace(r Recipe) bool {
	for i := range p.Recipes {
		if p.Recipes[i].ID == r.ID {
			p.Recipes[i] = r
			return true
		}
	}
	return false
}

// Remove drops exactly the recipe with the given ID. Total is decremented only
// when something was removed.
func (p *RecipesPage) Remove(id int64) bool {
	kept := p.Recipes[:0:0]
	removed := false
	for _, r := range p.Recipes {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	p.Recipes = kept
	if removed && p.Total > 0 {
		p.Total--
	}
	return removed
}
