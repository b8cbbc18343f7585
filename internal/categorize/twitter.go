package categorize

var twitterMedia = define("twitter", ResourceMedia,
	`https?:\/\/(www\.)?twitter\.com\/[_a-zA-Z0-9]{3,}.\/status\/([0-9]{1,})\??(?:\S+)?$`,
	pathSegment(3),
	inputURL,
)

// Profile URLs must end right after the handle.
var twitterUser = define("twitter", ResourceUser,
	`(http|https):\/\/(www\.)?twitter\.com\/[_a-zA-Z0-9]{3,}.$\/?`,
	pathSegment(1),
	inputURL,
)
