package trip

// BudgetView collects what the budget panel shows: the included base
// package and the optional per-person tours.
type BudgetView struct {
	Base    *BasePackage `json:"base,omitempty"`
	Options []Tour       `json:"options,omitempty"`
}

// Budget derives the budget rows. Empty reports whether there is anything
// to show at all (the panel hides itself otherwise).
func Budget(data TripData) BudgetView {
	return BudgetView{
		Base:    data.BasePackage,
		Options: data.Tours,
	}
}

func (b BudgetView) Empty() bool {
	return b.Base == nil && len(b.Options) == 0
}
