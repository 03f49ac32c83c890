package profile

// MergeIgnoringNull merges src into dest, skipping nil and empty values
// so a sparse higher-priority source does not wipe out settings a lower
// one already supplied.
func MergeIgnoringNull(src, dest map[string]any) error {
	for k, v := range src {
		dv, ok := dest[k]
		if !ok {
			dest[k] = v
			continue
		}

		if v == nil {
			continue
		}

		var overwrite bool
		switch vv := v.(type) {
		case string:
			if vv != "" {
				overwrite = true
			}
		case []any:
			if len(vv) > 0 {
				overwrite = true
			}
		case map[string]any:
			if dvv, ok := dv.(map[string]any); ok {
				if err := MergeIgnoringNull(vv, dvv); err != nil {
					return err
				}
				continue
			}
			overwrite = true
		default:
			overwrite = true
		}

		if overwrite {
			dest[k] = v
		}
	}

	return nil
}
