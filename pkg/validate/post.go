package validate

import "maps"

// Post validates a raw post payload: an id, a channelId, and a content
// string (the empty string is a legal content and must not be treated as
// absent). Publishing status goes through the default-substituting
// validator, degrading unknown statuses to draft with a logged warning.
func (v *Validator) Post(data any) (map[string]any, error) {
	obj, shapeErr := asObject("post", data)
	if shapeErr != nil {
		return nil, shapeErr
	}
	if err := requireID("post", "id", obj); err != nil {
		return nil, err
	}
	if err := requireID("post", "channelId", obj); err != nil {
		return nil, err
	}
	if err := requireString("post", "content", obj); err != nil {
		return nil, err
	}
	out := maps.Clone(obj)
	out["status"] = string(v.PostStatusOrDefault(obj["status"]))
	return out, nil
}

// SafePost never fails: invalid payloads are logged and dropped as nil.
func (v *Validator) SafePost(data any) map[string]any {
	post, err := v.Post(data)
	if err != nil {
		v.logInvalid("post", err)
		return nil
	}
	return post
}

// Posts validates a batch of posts all-or-nothing.
func (v *Validator) Posts(data any) ([]map[string]any, error) {
	return v.strictBatch("posts", data, v.Post)
}

// SafePosts keeps the valid subset of a batch, in order, and never fails.
func (v *Validator) SafePosts(data any) []map[string]any {
	return v.safeBatch("posts", data, v.SafePost)
}
