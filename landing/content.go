// Package landing holds the static copy of the marketing page.
package landing

type Link struct {
	Label  string `json:"label"`
	Anchor string `json:"anchor"`
}

type Hero struct {
	Headline     string `json:"headline"`
	Highlight    string `json:"highlight"`
	Description  string `json:"description"`
	CallToAction string `json:"callToAction"`
}

type Milestone struct {
	Icon  string   `json:"icon"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type Page struct {
	Brand       string      `json:"brand"`
	Nav         []Link      `json:"nav"`
	LaunchLabel string      `json:"launchLabel"`
	Hero        Hero        `json:"hero"`
	Scanner     ScannerCopy `json:"scanner"`
	Roadmap     Roadmap     `json:"roadmap"`
}

type ScannerCopy struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Placeholder string `json:"placeholder"`
	Button      string `json:"button"`
	BusyButton  string `json:"busyButton"`
}

type Roadmap struct {
	Title      string      `json:"title"`
	Subtitle   string      `json:"subtitle"`
	Milestones []Milestone `json:"milestones"`
}

// Default returns a fresh copy of the page content so callers may not mutate the
// shared copy.
func Default() Page {
	return Page{
		Brand: "Giggly The Wizard",
		Nav: []Link{
			{Label: "Features", Anchor: "features"},
			{Label: "Scanner", Anchor: "scanner"},
			{Label: "Tokenomics", Anchor: "tokenomics"},
			{Label: "Roadmap", Anchor: "roadmap"},
		},
		LaunchLabel: "Launch App",
		Hero: Hero{
			Headline:     "Discover Safe Tokens",
			Highlight:    "With Magical Analysis",
			Description:  "Advanced token scanner powered by ancient wizardry to help you find secure and promising tokens on the Ethereum network.",
			CallToAction: "Cast Scanning Spell",
		},
		Scanner: ScannerCopy{
			Title:       "Token Scanner",
			Subtitle:    "Enter any ERC20 token address to analyze its security and metrics",
			Placeholder: "Enter token address (0x...)",
			Button:      "Scan Token",
			BusyButton:  "Scanning...",
		},
		Roadmap: Roadmap{
			Title:    "Magical Journey Ahead",
			Subtitle: "Our enchanted development timeline",
			Milestones: []Milestone{
				{
					Icon:  "wand-sparkles",
					Title: "Q4 2024",
					Items: []string{"Launch of basic token scanner", "Security audit implementation", "Community building"},
				},
				{
					Icon:  "crystal-ball",
					Title: "Q1 2025",
					Items: []string{"AI model enhancement", "Advanced risk detection", "Mobile app development"},
				},
				{
					Icon:  "hat-wizard",
					Title: "Q2 2025",
					Items: []string{"Multi-chain support", "Premium features launch", "Partnership program"},
				},
				{
					Icon:  "dragon",
					Title: "Q3 2025",
					Items: []string{"Global expansion", "Institutional API access", "Advanced trading features"},
				},
			},
		},
	}
}
