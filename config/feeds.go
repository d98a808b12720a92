package config

// CategoryFeeds maps a news category to its ordered list of feed URLs.
var CategoryFeeds = map[string][]string{
	"World": {
		"https://rss.nytimes.com/services/xml/rss/nyt/World.xml",
		"https://www.theguardian.com/world/rss",
		"https://www.aljazeera.com/xml/rss/all.xml",
	},
	"Technology": {
		"https://rss.nytimes.com/services/xml/rss/nyt/Technology.xml",
		"https://www.theverge.com/rss/index.xml",
		"https://www.wired.com/feed/rss",
	},
	"Sports": {
		"https://www.espn.com/espn/rss/news",
		"https://www.skysports.com/rss/12040",
		"https://www.bbc.co.uk/sport/rss.xml",
	},
	"Entertainment": {
		"https://www.billboard.com/feed/",
		"https://www.etonline.com/rss",
		"https://www.rollingstone.com/feed/",
	},
	"Lifestyle": {
		"https://www.refinery29.com/en-us/feed.xml",
		"https://rss.nytimes.com/services/xml/rss/nyt/FashionandStyle.xml",
	},
	"Health": {
		"https://www.medicalnewstoday.com/rss",
		"https://www.nhs.uk/news/feed.rss",
	},
	"Politics": {
		"https://www.politico.com/rss/politics.xml",
		"https://www.theguardian.com/politics/rss",
	},
}

// CategoryOrder fixes the display order of categories; map iteration
// order would shuffle the selector between runs.
var CategoryOrder = []string{
	"World",
	"Technology",
	"Sports",
	"Entertainment",
	"Lifestyle",
	"Health",
	"Politics",
}

// FallbackSearchURL is the aggregating search feed queried when every
// primary source for a category fails. %s is the URL-encoded category.
const FallbackSearchURL = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"
