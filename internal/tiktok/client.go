package tiktok

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"reelstream/internal/domain"

	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://www.tiktok.com"

// sigiStateRe matches the JSON state blob TikTok embeds in its pages.
var sigiStateRe = regexp.MustCompile(`(?s)<script id="SIGI_STATE" type="application/json">(.*?)</script>`)

// Client fetches video data from TikTok on a best-effort basis. All
// failures collapse to an empty slice; callers treat that as "source
// produced nothing" and move to the next fallback tier.
//
// Construct one Client at startup and inject it; it is safe for
// concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxHashtags int
}

func NewClient(timeout time.Duration, maxHashtags int) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     defaultBaseURL,
		maxHashtags: maxHashtags,
	}
}

// FetchTrending tries the trending page scrape first, then the
// recommendation API endpoint.
func (c *Client) FetchTrending(count int) []domain.Reel {
	if reels := c.scrapePage(c.baseURL+"/trending", count); len(reels) > 0 {
		return reels
	}
	return c.fetchItemList(count)
}

// FetchByHashtag scrapes the hashtag page.
func (c *Client) FetchByHashtag(tag string, count int) []domain.Reel {
	return c.scrapePage(c.baseURL+"/tag/"+url.PathEscape(tag), count)
}

// FetchByUser scrapes the user profile page.
func (c *Client) FetchByUser(username string, count int) []domain.Reel {
	return c.scrapePage(c.baseURL+"/@"+url.PathEscape(username), count)
}

func (c *Client) scrapePage(pageURL string, count int) []domain.Reel {
	body, ok := c.get(pageURL, nil)
	if !ok {
		return nil
	}

	match := sigiStateRe.FindSubmatch(body)
	if match == nil {
		return nil
	}

	var state struct {
		ItemModule map[string]map[string]any `json:"ItemModule"`
	}
	if err := json.Unmarshal(match[1], &state); err != nil {
		logrus.WithError(err).Debug("tiktok page state decode failed")
		return nil
	}

	reels := make([]domain.Reel, 0, len(state.ItemModule))
	for _, item := range state.ItemModule {
		if reel := Normalize(item, c.maxHashtags); reel != nil {
			reels = append(reels, *reel)
		}
		if len(reels) >= count {
			break
		}
	}
	return reels
}

func (c *Client) fetchItemList(count int) []domain.Reel {
	endpoint := fmt.Sprintf("%s/api/recommend/item_list/?aid=1988&count=%d&cursor=0", c.baseURL, count)
	body, ok := c.get(endpoint, map[string]string{
		"Accept":  "application/json, text/plain, */*",
		"Referer": c.baseURL + "/",
	})
	if !ok {
		return nil
	}

	var payload struct {
		ItemList []map[string]any `json:"itemList"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		logrus.WithError(err).Debug("tiktok item list decode failed")
		return nil
	}

	reels := make([]domain.Reel, 0, len(payload.ItemList))
	for _, item := range payload.ItemList {
		if reel := Normalize(item, c.maxHashtags); reel != nil {
			reels = append(reels, *reel)
		}
		if len(reels) >= count {
			break
		}
	}
	return reels
}

// get performs a browser-like request and returns the body only on a
// 200 response. Network errors are logged at debug level; the adapter
// never surfaces them.
func (c *Client) get(rawURL string, extraHeaders map[string]string) ([]byte, bool) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("url", rawURL).Debug("tiktok fetch failed")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{"url": rawURL, "status": resp.StatusCode}).Debug("tiktok fetch non-200")
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false
	}
	return body, true
}
