package entity

// DefaultTradeSlug is used when a submission arrives without a recognised
// trade key.
const DefaultTradeSlug = "plumber"

type Trade struct {
	Slug        string `json:"slug"`
	WebsiteType string `json:"websiteType"`
	Singular    string `json:"singular"`
	Plural      string `json:"plural"`
	Title       string `json:"title"`
}

var trades = map[string]Trade{
	"trade":         {Slug: "trade", WebsiteType: "trade", Singular: "tradesperson", Plural: "tradespeople", Title: "Tradespeople"},
	"plumber":       {Slug: "plumber", WebsiteType: "plumbing", Singular: "plumber", Plural: "plumbers", Title: "Plumbers"},
	"electrician":   {Slug: "electrician", WebsiteType: "electrician", Singular: "electrician", Plural: "electricians", Title: "Electricians"},
	"builder":       {Slug: "builder", WebsiteType: "building", Singular: "builder", Plural: "builders", Title: "Builders"},
	"landscaper":    {Slug: "landscaper", WebsiteType: "landscaping", Singular: "landscaper", Plural: "landscapers", Title: "Landscapers"},
	"groundworks":   {Slug: "groundworks", WebsiteType: "groundworks", Singular: "groundworker", Plural: "groundworkers", Title: "Groundworkers"},
	"carpenter":     {Slug: "carpenter", WebsiteType: "carpentry", Singular: "carpenter", Plural: "carpenters", Title: "Carpenters"},
	"roofer":        {Slug: "roofer", WebsiteType: "roofing", Singular: "roofer", Plural: "roofers", Title: "Roofers"},
	"locksmith":     {Slug: "locksmith", WebsiteType: "locksmith", Singular: "locksmith", Plural: "locksmiths", Title: "Locksmiths"},
	"windows-doors": {Slug: "windows-doors", WebsiteType: "windows & doors", Singular: "fitter", Plural: "fitters", Title: "Window & Door Fitters"},
	"removals":      {Slug: "removals", WebsiteType: "removals", Singular: "removal company", Plural: "removal companies", Title: "Removal Companies"},
}

func TradeBySlug(slug string) (Trade, bool) {
	t, ok := trades[slug]
	return t, ok
}

func AllTradeSlugs() []string {
	slugs := make([]string, 0, len(trades))
	for slug := range trades {
		slugs = append(slugs, slug)
	}
	return slugs
}
