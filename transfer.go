package cmdfs

// transfer moves src's content into dst. The source is materialized in
// full before the destination is touched, so a source can feed itself or
// one of its own members without corruption. A FileGroup destination
// receives the payload once per member.
func (s *Shell) transfer(src, dst Source, appendMode bool, opts []CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}

	op := "copy"
	if appendMode {
		op = "append"
	}

	text, err := src.Text()
	if err != nil {
		return s.finish(op, err, cs)
	}

	if g, ok := dst.(*FileGroup); ok {
		for _, m := range g.members {
			if err = s.deliver(m, text, appendMode); err != nil {
				break
			}
		}
		return s.finish(op, err, cs)
	}
	return s.finish(op, s.deliver(dst, text, appendMode), cs)
}

func (s *Shell) deliver(dst Source, text string, appendMode bool) error {
	if appendMode {
		return dst.appendText(text, s.sep)
	}
	return dst.setText(text)
}
