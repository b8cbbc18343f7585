package categorize

const youtubeWatchURL = "https://www.youtube.com/watch?v="

// youtubeIDLength is the length of every YouTube video ID
const youtubeIDLength = 11

var youtubeUser = define("youtube", ResourceUser,
	`((http|https):\/\/|)(www\.)?youtube\.com\/(channel\/|user\/)[a-zA-Z0-9]{1,}`,
	pathSegment(2),
	youtubeWatch,
)

// The media pattern is deliberately loose: it accepts youtu.be short links,
// /v/, /u/x/, /embed/ and watch? forms, with or without the v= key.
var youtubeMedia = define("youtube", ResourceMedia,
	`^.*((youtu.be\/)|(v\/)|(\/u\/\w\/)|(embed\/)|(watch\?))\??(?:t=\S*&)?(v=)?([^#\&\?]*).*`,
	youtubeVideoID,
	youtubeWatch,
)

// youtubeVideoID reads the ID capture from the raw URL. Anything that is not
// exactly eleven characters is not a video ID.
func youtubeVideoID(d *definition, raw string) *string {
	id, ok := d.group(raw, 8)
	if !ok || len(id) != youtubeIDLength {
		return nil
	}
	return &id
}

func youtubeWatch(r Result) string {
	return youtubeWatchURL + r.ResourceOrEmpty()
}
