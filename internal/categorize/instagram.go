package categorize

var instagramUser = define("instagram", ResourceUser,
	`(http|https):\/\/(www\.)?(instagr\.am|instagram\.com)\/(?!p\/).*`,
	pathSegment(1),
	instagramPost,
)

var instagramMedia = define("instagram", ResourceMedia,
	`(http|https):\/\/(www\.)?(instagr\.am|instagram\.com)\/p\/.*`,
	pathSegment(2),
	instagramPost,
)

func instagramPost(r Result) string {
	return "https://instagram.com/p/" + r.ResourceOrEmpty() + "/"
}
