// Package catalog holds the hand-maintained list of ESG news websites.
// Edit the table below to add or change a source.
package catalog

import "github.com/user/esg-source-catalog/internal/entity"

var sources = [...]entity.Source{
	{
		Name:         "KnowESG",
		URL:          "https://www.knowesg.com",
		Region:       "Global",
		Category:     "ESG / Sustainability",
		Scrapability: entity.ScrapabilityEasy,
		Notes:        "Corporate ESG news, ratings insight, structured categories.",
	},
	{
		Name:         "ESG News",
		URL:          "https://esgnews.com",
		Region:       "Global",
		Category:     "ESG / Climate / Sustainable Investing",
		Scrapability: entity.ScrapabilityEasy,
		Notes:        "High-frequency updates, good for time-series ESG monitoring.",
	},
	{
		Name:         "ESG Chronicle",
		URL:          "https://esgchronicle.com",
		Region:       "Global + Asia",
		Category:     "ESG / Climate Policy / Energy Transition",
		Scrapability: entity.ScrapabilityEasy,
		Notes:        "Topic-wise sections – good for topic-level scrapers.",
	},
	{
		Name:         "ESG Times",
		URL:          "https://www.esgtimes.in",
		Region:       "India + Global",
		Category:     "ESG / Corporate India / Sustainability",
		Scrapability: entity.ScrapabilityEasy,
		Notes:        "Good for emerging market ESG and India-specific tracking.",
	},
	{
		Name:         "Eco-Business",
		URL:          "https://www.eco-business.com",
		Region:       "Asia-Pacific",
		Category:     "Sustainability / Climate / Policy",
		Scrapability: entity.ScrapabilityMedium,
		Notes:        "Deep regional sustainability coverage.",
	},
	{
		Name:         "Mongabay",
		URL:          "https://www.mongabay.com",
		Region:       "Global",
		Category:     "Environment / Biodiversity / Conservation",
		Scrapability: entity.ScrapabilityEasy,
		Notes:        "Environmental news for ecological ESG context.",
	},
	{
		Name:         "Grist",
		URL:          "https://grist.org",
		Region:       "Global",
		Category:     "Climate Justice / Environment",
		Scrapability: entity.ScrapabilityEasy,
		Notes:        "Long-form climate/environment journalism.",
	},
	{
		Name:         "TreeHugger",
		URL:          "https://www.treehugger.com",
		Region:       "Global",
		Category:     "Sustainability / Green Living",
		Scrapability: entity.ScrapabilityEasy,
		Notes:        "Consumer sustainability & eco-lifestyle coverage.",
	},
	{
		Name:         "ESG News India",
		URL:          "https://www.esgnewsindia.com",
		Region:       "India",
		Category:     "India ESG / Corporate Sustainability",
		Scrapability: entity.ScrapabilityEasy,
		Notes:        "India-focused ESG and CSR developments.",
	},
}

// Sources returns a copy of the built-in catalog in its declared order.
func Sources() []entity.Source {
	out := make([]entity.Source, len(sources))
	copy(out, sources[:])
	return out
}
