package text

// Bucket is a grouped unit of missing text submitted to the asset
// loader: a detected language code and the text sharing it.
type Bucket struct {
	Code string
	Text string
}

// BucketMissing groups text segments lacking glyph coverage for asset
// resolution. Segments are deduplicated at grapheme granularity, each
// unique grapheme is classified by detect, and graphemes are grouped by
// code: the emoji code keeps one bucket entry per grapheme, every other
// code concatenates all its graphemes into a single entry in encounter
// order.
func BucketMissing(segments []string, detect func(grapheme string) string) ([]Bucket, error) {
	if detect == nil {
		detect = DetectLanguage
	}

	seen := make(map[string]struct{})
	var buckets []Bucket
	byCode := make(map[string]int) // code -> index into buckets

	for _, segment := range segments {
		clusters, err := Segment(segment, GranularityGrapheme, "")
		if err != nil {
			return nil, err
		}
		for _, grapheme := range clusters {
			if _, ok := seen[grapheme]; ok {
				continue
			}
			seen[grapheme] = struct{}{}

			code := detect(grapheme)
			if code == LanguageEmoji {
				buckets = append(buckets, Bucket{Code: code, Text: grapheme})
				continue
			}
			if i, ok := byCode[code]; ok {
				buckets[i].Text += grapheme
				continue
			}
			byCode[code] = len(buckets)
			buckets = append(buckets, Bucket{Code: code, Text: grapheme})
		}
	}
	return buckets, nil
}
