package configs

// Pricing holds the monthly rate per placement in minor currency units.
// The pricing policy prorates these by the campaign's serving window.
type Pricing struct {
	HomeTop       int64 `env:"HOME_TOP" envDefault:"50000"`
	HomeBottom    int64 `env:"HOME_BOTTOM" envDefault:"30000"`
	SidebarRight1 int64 `env:"SIDEBAR_RIGHT_1" envDefault:"20000"`
	SidebarRight2 int64 `env:"SIDEBAR_RIGHT_2" envDefault:"15000"`
	CommunityFeed int64 `env:"COMMUNITY_FEED" envDefault:"25000"`
}
