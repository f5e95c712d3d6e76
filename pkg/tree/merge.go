package tree

// Merge deep-merges src into dst. Nested objects are merged key by key, any other value
// in src (arrays included) replaces the one in dst. src is not modified and shares no
// mutable state with dst afterwards.
func Merge(dst, src *Object) {
	src.Each(func(key string, value any) {
		srcObj, srcIsObj := value.(*Object)
		current, _ := dst.Get(key)
		dstObj, dstIsObj := current.(*Object)

		if srcIsObj && dstIsObj {
			Merge(dstObj, srcObj)

			return
		}

		dst.Set(key, cloneValue(value))
	})
}
