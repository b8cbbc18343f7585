package categorize

var facebookMedia = define("facebook", ResourceMedia,
	`(http|https):\/\/www\.facebook\.com\/video\.php\?v=[a-zA-Z0-9]{1,}.*`,
	queryParam("v"),
	inputURL,
)
