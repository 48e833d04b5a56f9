package types

// Read-only projections returned by the content-source endpoints. Items are
// ephemeral: re-fetched on every request, never mutated or stored.

type NewsArticle struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	PublishedAt string `json:"published_at"`
	ImageURL    string `json:"image_url"`
	IsStatic    bool   `json:"is_static"`
}

type JobListing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type,omitempty"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	PostedAt    string `json:"posted_at"`
	IsStatic    bool   `json:"is_static,omitempty"`
}

type VideoItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
	Channel     string `json:"channel"`
	Category    string `json:"category"`
	PublishedAt string `json:"published_at"`
	Duration    string `json:"duration,omitempty"`
	Views       string `json:"views,omitempty"`
	IsStatic    bool   `json:"is_static"`
}

type RedditPost struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Subreddit   string `json:"subreddit"`
	Author      string `json:"author"`
	Score       int    `json:"score"`
	Comments    int    `json:"comments"`
	CreatedAt   string `json:"created_at"`
	IsStatic    bool   `json:"is_static,omitempty"`
}

type Deal struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	URL           string  `json:"url"`
	Platform      string  `json:"platform"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Discount      float64 `json:"discount"`
	ImageURL      string  `json:"image_url"`
	ValidUntil    string  `json:"valid_until"`
}

type FoodItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cuisine     string   `json:"cuisine"`
	Rating      float64  `json:"rating"`
	Price       string   `json:"price"`
	ImageURL    string   `json:"image_url"`
	Restaurant  string   `json:"restaurant"`
	DietaryInfo []string `json:"dietary_info"`
}

type MovieItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	Rating      float64 `json:"rating"`
	Year        int     `json:"year"`
	Duration    string  `json:"duration"`
	Language    string  `json:"language"`
	PosterURL   string  `json:"poster_url"`
	TrailerURL  string  `json:"trailer_url"`
}

type Recommendation struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Category    string  `json:"category"`
	Score       float64 `json:"score"`
}

type Nutrition struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

type Recipe struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Image          string    `json:"image"`
	ReadyInMinutes int       `json:"ready_in_minutes"`
	Servings       int       `json:"servings"`
	Cuisine        []string  `json:"cuisine"`
	Dietary        []string  `json:"dietary"`
	Ingredients    []string  `json:"ingredients"`
	Instructions   string    `json:"instructions"`
	SourceURL      string    `json:"source_url"`
	Nutrition      Nutrition `json:"nutrition"`
}

type ForecastDay struct {
	Day         string `json:"day"`
	High        int    `json:"high"`
	Low         int    `json:"low"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type WeatherReport struct {
	City        string        `json:"city"`
	Country     string        `json:"country"`
	Temperature int           `json:"temperature"`
	FeelsLike   int           `json:"feels_like"`
	Description string        `json:"description"`
	Humidity    int           `json:"humidity"`
	WindSpeed   int           `json:"wind_speed"`
	Pressure    int           `json:"pressure"`
	Visibility  int           `json:"visibility"`
	Icon        string        `json:"icon"`
	Forecast    []ForecastDay `json:"forecast"`
	IsMock      bool          `json:"is_mock"`
	Timestamp   string        `json:"timestamp"`
}

type CryptoCoin struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
	MarketCap float64 `json:"market_cap"`
	Volume    float64 `json:"volume"`
	Image     string  `json:"image,omitempty"`
	Rank      int     `json:"rank"`
}

type CryptoSnapshot struct {
	Cryptocurrencies []CryptoCoin `json:"cryptocurrencies"`
	Count            int          `json:"count"`
	LastUpdated      string       `json:"last_updated"`
	IsMock           bool         `json:"is_mock,omitempty"`
}
