package domain

const (
	CollectionOutfitCatalog = "style_outfit_catalog"
)
const (
	CollectionStylePreference = "style_user_preference"
)
const (
	CollectionFeedContent = "style_feed_content"
)
const (
	CollectionFeedInteraction = "style_feed_interaction"
)
const (
	CollectionTryOnTask = "style_tryon_task"
)
