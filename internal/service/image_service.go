package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const commonsAPI = "https://commons.wikimedia.org/w/api.php"

// ImageService resolves a skill label to an illustrative image URL.
// Resolution order: a curated skill→Wikimedia-Commons file map, then a
// best-effort Commons photo search, then a deterministic placeholder.
// It never fails; the worst case is the placeholder.
type ImageService struct {
	client  *http.Client
	apiBase string
}

func NewImageService() *ImageService {
	return &ImageService{
		client:  &http.Client{Timeout: 5 * time.Second},
		apiBase: commonsAPI,
	}
}

// keyAliases folds common label variants onto stable image keys.
var keyAliases = map[string]string{
	"coding":       "coding",
	"computer":     "coding",
	"design":       "design",
	"web design":   "design",
	"guitar":       "guitar",
	"piano":        "piano",
	"cooking":      "cooking",
	"yoga":         "yoga",
	"fitness":      "fitness",
	"camera":       "camera",
	"english":      "english",
	"speaking":     "english",
	"excel":        "excel",
	"spreadsheet":  "excel",
	"resume":       "resume",
	"cv":           "resume",
	"drawing":      "drawing",
	"sketch":       "drawing",
}

// curatedFiles maps image keys to hand-picked Commons files with a
// guaranteed photo look.
var curatedFiles = map[string]string{
	"cooking": "People_Cooking_in_the_Kitchen_10.jpg",
	"guitar":  "Guitar_2.jpg",
	"coding":  "Computer_Keyboard_1_2018-06-16.jpg",
	"yoga":    "YogaClass.jpg",
	"camera":  "Old_camera-whole.jpg",
	"fitness": "Gym_Working_out.jpg",
	"excel":   "Closeup_of_Excel_Spreadsheet_template_to_track_printouts_(29911005444).jpg",
	"resume":  "Foto_Curriculum_Vitae.jpg",
	"piano":   "A_piano.jpg",
	"english": "Microphone_1.jpg",
	"drawing": "Pencil_drawing_photo_Vladimir_Dashyan2.jpg",
	"design":  "Web_design_-_geograph.org.uk_-_3147325.jpg",
}

// Lookup returns the URL to redirect the client to.
func (s *ImageService) Lookup(ctx context.Context, rawQ, seed string) string {
	rawQ = strings.TrimSpace(rawQ)
	if seed == "" {
		seed = "1"
	}

	fallbackKey := rawQ
	if fallbackKey == "" {
		fallbackKey = "skillswap"
	}
	fallback := fmt.Sprintf("https://picsum.photos/seed/%s-%s/720/720",
		url.PathEscape(fallbackKey), url.PathEscape(seed))

	if rawQ == "" {
		return fallback
	}

	key := normalizeImageKey(rawQ)

	if file, ok := curatedFiles[key]; ok {
		return "https://commons.wikimedia.org/wiki/Special:FilePath/" +
			url.PathEscape(file) + "?width=720"
	}

	urls, err := s.searchCommons(ctx, key)
	if err != nil || len(urls) == 0 {
		return fallback
	}

	idx := imageHash(key+"-"+seed) % len(urls)
	return urls[idx]
}

// searchCommons runs a CirrusSearch restricted to photo-like files and
// returns thumbnail URLs.
func (s *ImageService) searchCommons(ctx context.Context, key string) ([]string, error) {
	cirrus := strings.Join([]string{
		"(" + key + " photo)",
		"(filemime:image/jpeg OR filemime:image/png)",
		"-filemime:image/svg+xml",
		"-intitle:logo -intitle:icon -intitle:diagram -intitle:map -intitle:flag",
		"-insource:svg -insource:vector",
	}, " ")

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("origin", "*")
	params.Set("generator", "search")
	params.Set("gsrnamespace", "6")
	params.Set("gsrlimit", "18")
	params.Set("gsrwhat", "text")
	params.Set("gsrsort", "relevance")
	params.Set("gsrsearch", cirrus)
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url")
	params.Set("iiurlwidth", "720")
	params.Set("iiurlheight", "720")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("commons search: status %d", resp.StatusCode)
	}

	var result struct {
		Query struct {
			Pages map[string]struct {
				ImageInfo []struct {
					ThumbURL string `json:"thumburl"`
					URL      string `json:"url"`
				} `json:"imageinfo"`
			} `json:"pages"`
		} `json:"query"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	var urls []string
	for _, page := range result.Query.Pages {
		if len(page.ImageInfo) == 0 {
			continue
		}
		u := page.ImageInfo[0].ThumbURL
		if u == "" {
			u = page.ImageInfo[0].URL
		}
		if strings.HasPrefix(u, "http") {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// normalizeImageKey lowercases the query and folds known aliases, falling
// back to the first word.
func normalizeImageKey(q string) string {
	s := strings.ToLower(strings.TrimSpace(q))
	first := s
	if fields := strings.Fields(s); len(fields) > 0 {
		first = fields[0]
	}

	if key, ok := keyAliases[s]; ok {
		return key
	}
	if key, ok := keyAliases[first]; ok {
		return key
	}
	if first != "" {
		return first
	}
	return s
}

// imageHash is a stable non-negative string hash used to pick a search
// result deterministically per query+seed.
func imageHash(s string) int {
	var h uint32
	for _, r := range s {
		h = h*31 + uint32(r)
	}
	return int(h & 0x7fffffff)
}
