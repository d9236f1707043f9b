package feed

// Predicate is a WHERE condition plus its positional parameters, ready to
// be spliced into the base feed query. Conditions are fixed strings; caller
// data only ever travels through Args.
type Predicate struct {
	Where string
	Args  []any
}

// Filter narrows the feed to one slice of posts. The variant set is closed:
// a filter is one of None, ByUsername, Personal, Collection or Admin, and
// each produces its own structured predicate.
type Filter interface {
	Predicate() Predicate
}

// NoFilter is the global feed.
type NoFilter struct{}

func (NoFilter) Predicate() Predicate {
	return Predicate{}
}

// UsernameFilter restricts the feed to posts by one author.
type UsernameFilter struct {
	Username string
}

func (f UsernameFilter) Predicate() Predicate {
	return Predicate{
		Where: "u.username = ?",
		Args:  []any{f.Username},
	}
}

// PersonalFilter restricts the feed to authors the caller follows. Following
// is never implied for the caller's own account, so an empty follow set
// yields an empty feed.
type PersonalFilter struct {
	UserID int64
}

func (f PersonalFilter) Predicate() Predicate {
	return Predicate{
		Where: "(SELECT COUNT(fo.follower_id) FROM follower fo WHERE fo.follower_id = ? AND fo.user_id = u.user_id LIMIT 1) > 0",
		Args:  []any{f.UserID},
	}
}

// CollectionFilter restricts the feed to posts in one collection. It carries
// the decoded internal collection ID; token decoding happens at the handler.
type CollectionFilter struct {
	CollectionID int64
}

func (f CollectionFilter) Predicate() Predicate {
	return Predicate{
		Where: "(SELECT COUNT(cp.post_id) FROM collection_post cp WHERE cp.collection_id = ? AND cp.post_id = p.post_id LIMIT 1) > 0",
		Args:  []any{f.CollectionID},
	}
}

// AdminFilter restricts the feed to posts with at least one moderation flag.
// Username optionally narrows it further to a single author.
type AdminFilter struct {
	Username string
}

func (f AdminFilter) Predicate() Predicate {
	flagged := "(SELECT COUNT(fl.flag_id) FROM flag fl WHERE fl.post_id = p.post_id LIMIT 1) > 0"
	if f.Username == "" {
		return Predicate{Where: flagged}
	}
	return Predicate{
		Where: "u.username = ? AND " + flagged,
		Args:  []any{f.Username},
	}
}
