package vimeo

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// PictureSize is one thumbnail candidate. Vimeo returns candidates ordered
// by ascending width.
type PictureSize struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Link   string `json:"link"`
}

// Video is a single entry from the Vimeo API
type Video struct {
	URI         string `json:"uri"` // e.g. /videos/123456789
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"` // seconds
	Pictures    struct {
		Sizes []PictureSize `json:"sizes"`
	} `json:"pictures"`
	Status  string `json:"status"`
	Privacy struct {
		View string `json:"view"`
	} `json:"privacy"`
	CreatedTime string `json:"created_time"`
}

// ListResponse is one page of the /me/videos listing
type ListResponse struct {
	Data    []Video `json:"data"`
	Total   int     `json:"total"`
	Page    int     `json:"page"`
	PerPage int     `json:"per_page"`
	Paging  struct {
		Next     *string `json:"next"`
		Previous *string `json:"previous"`
		First    string  `json:"first"`
		Last     string  `json:"last"`
	} `json:"paging"`
}

// Client talks to the Vimeo REST API
type Client struct {
	baseURL     string
	accessToken string
	pageSize    int
	http        *resty.Client
}

func NewClient(baseURL, accessToken string, pageSize int) *Client {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		pageSize:    pageSize,
		http:        resty.New(),
	}
}

// GetVideos fetches one page of the authenticated account's videos
func (c *Client) GetVideos(page int) (*ListResponse, error) {
	if c.accessToken == "" {
		return nil, fmt.Errorf("vimeo access token is required")
	}

	resp, err := c.http.R().
		SetHeader("Authorization", "Bearer "+c.accessToken).
		SetHeader("Accept", "application/vnd.vimeo.*+json;version=3.4").
		SetQueryParams(map[string]string{
			"page":     strconv.Itoa(page),
			"per_page": strconv.Itoa(c.pageSize),
			"fields":   "uri,name,description,duration,pictures,status,privacy,created_time",
		}).
		Get(c.baseURL + "/me/videos")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %v", err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("vimeo API error (%d): %s", resp.StatusCode(), resp.String())
	}

	var listResp ListResponse
	if err := json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, fmt.Errorf("failed to parse vimeo response: %v", err)
	}

	return &listResp, nil
}

// ListAllVideos walks every page of the account's videos and gathers them
// into a single batch.
func (c *Client) ListAllVideos() ([]Video, error) {
	var all []Video
	for page := 1; ; page++ {
		listResp, err := c.GetVideos(page)
		if err != nil {
			return nil, err
		}
		all = append(all, listResp.Data...)
		if len(listResp.Data) == 0 || listResp.Paging.Next == nil {
			break
		}
	}
	return all, nil
}
