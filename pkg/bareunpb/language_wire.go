package bareunpb

func (d *Document) appendWire(b []byte) []byte {
	if d == nil {
		return b
	}
	b = appendString(b, 2, d.Content)
	return appendString(b, 4, d.Language)
}

func (d *Document) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 2:
			d.Content = f.asString()
		case 4:
			d.Language = f.asString()
		}
		return nil
	})
}

func (s *TextSpan) appendWire(b []byte) []byte {
	if s == nil {
		return b
	}
	b = appendString(b, 1, s.Content)
	b = appendInt32(b, 2, s.BeginOffset)
	return appendInt32(b, 3, s.Length)
}

func (s *TextSpan) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			s.Content = f.asString()
		case 2:
			s.BeginOffset = f.asInt32()
		case 3:
			s.Length = f.asInt32()
		}
		return nil
	})
}

func (m *Morpheme) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendMessage(b, 1, m.Text)
	b = appendInt32(b, 2, int32(m.Tag))
	b = appendFloat(b, 3, m.Probability)
	return appendInt32(b, 5, int32(m.OutOfVocab))
}

func (m *Morpheme) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			m.Text, err = consumeMessage[*TextSpan](f)
		case 2:
			m.Tag = Tag(f.asInt32())
		case 3:
			m.Probability = f.asFloat()
		case 5:
			m.OutOfVocab = OutOfVocab(f.asInt32())
		}
		return err
	})
}

func (t *Token) appendWire(b []byte) []byte {
	if t == nil {
		return b
	}
	b = appendMessage(b, 1, t.Text)
	b = appendMessages(b, 2, t.Morphemes)
	b = appendString(b, 4, t.Lemma)
	return appendString(b, 5, t.Tagged)
}

func (t *Token) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			t.Text, err = consumeMessage[*TextSpan](f)
		case 2:
			t.Morphemes, err = appendConsumed(t.Morphemes, f)
		case 4:
			t.Lemma = f.asString()
		case 5:
			t.Tagged = f.asString()
		}
		return err
	})
}

func (s *Sentence) appendWire(b []byte) []byte {
	if s == nil {
		return b
	}
	b = appendMessage(b, 1, s.Text)
	b = appendMessages(b, 2, s.Tokens)
	return appendString(b, 3, s.Refined)
}

func (s *Sentence) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			s.Text, err = consumeMessage[*TextSpan](f)
		case 2:
			s.Tokens, err = appendConsumed(s.Tokens, f)
		case 3:
			s.Refined = f.asString()
		}
		return err
	})
}

func (r *AnalyzeSyntaxRequest) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendMessage(b, 1, r.Document)
	b = appendInt32(b, 2, int32(r.EncodingType))
	b = appendBool(b, 3, r.AutoSplitSentence)
	b = appendString(b, 4, r.CustomDomain)
	b = appendBool(b, 5, r.AutoSpacing)
	return appendBool(b, 6, r.AutoJointing)
}

func (r *AnalyzeSyntaxRequest) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.Document, err = consumeMessage[*Document](f)
		case 2:
			r.EncodingType = EncodingType(f.asInt32())
		case 3:
			r.AutoSplitSentence = f.asBool()
		case 4:
			r.CustomDomain = f.asString()
		case 5:
			r.AutoSpacing = f.asBool()
		case 6:
			r.AutoJointing = f.asBool()
		}
		return err
	})
}

func (r *AnalyzeSyntaxResponse) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendMessages(b, 1, r.Sentences)
	return appendString(b, 3, r.Language)
}

func (r *AnalyzeSyntaxResponse) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.Sentences, err = appendConsumed(r.Sentences, f)
		case 3:
			r.Language = f.asString()
		}
		return err
	})
}

func (r *AnalyzeSyntaxListRequest) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendStrings(b, 1, r.Sentences)
	b = appendString(b, 2, r.Language)
	b = appendInt32(b, 3, int32(r.EncodingType))
	b = appendString(b, 4, r.CustomDomain)
	b = appendBool(b, 5, r.AutoSpacing)
	return appendBool(b, 6, r.AutoJointing)
}

func (r *AnalyzeSyntaxListRequest) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			r.Sentences = append(r.Sentences, f.asString())
		case 2:
			r.Language = f.asString()
		case 3:
			r.EncodingType = EncodingType(f.asInt32())
		case 4:
			r.CustomDomain = f.asString()
		case 5:
			r.AutoSpacing = f.asBool()
		case 6:
			r.AutoJointing = f.asBool()
		}
		return nil
	})
}

func (r *AnalyzeSyntaxListResponse) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendMessages(b, 1, r.Sentences)
	return appendString(b, 3, r.Language)
}

func (r *AnalyzeSyntaxListResponse) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.Sentences, err = appendConsumed(r.Sentences, f)
		case 3:
			r.Language = f.asString()
		}
		return err
	})
}

func (r *TokenizeRequest) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendMessage(b, 1, r.Document)
	b = appendInt32(b, 2, int32(r.EncodingType))
	return appendBool(b, 3, r.AutoSplitSentence)
}

func (r *TokenizeRequest) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.Document, err = consumeMessage[*Document](f)
		case 2:
			r.EncodingType = EncodingType(f.asInt32())
		case 3:
			r.AutoSplitSentence = f.asBool()
		}
		return err
	})
}

func (s *Segment) appendWire(b []byte) []byte {
	if s == nil {
		return b
	}
	b = appendMessage(b, 1, s.Text)
	return appendString(b, 2, s.Hint)
}

func (s *Segment) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			s.Text, err = consumeMessage[*TextSpan](f)
		case 2:
			s.Hint = f.asString()
		}
		return err
	})
}

func (t *SegmentToken) appendWire(b []byte) []byte {
	if t == nil {
		return b
	}
	b = appendMessage(b, 1, t.Text)
	b = appendMessages(b, 2, t.Segments)
	return appendString(b, 3, t.Tagged)
}

func (t *SegmentToken) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			t.Text, err = consumeMessage[*TextSpan](f)
		case 2:
			t.Segments, err = appendConsumed(t.Segments, f)
		case 3:
			t.Tagged = f.asString()
		}
		return err
	})
}

func (s *SegmentSentence) appendWire(b []byte) []byte {
	if s == nil {
		return b
	}
	b = appendMessage(b, 1, s.Text)
	return appendMessages(b, 2, s.Tokens)
}

func (s *SegmentSentence) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			s.Text, err = consumeMessage[*TextSpan](f)
		case 2:
			s.Tokens, err = appendConsumed(s.Tokens, f)
		}
		return err
	})
}

func (r *TokenizeResponse) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendMessages(b, 1, r.Sentences)
	return appendString(b, 3, r.Language)
}

func (r *TokenizeResponse) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.Sentences, err = appendConsumed(r.Sentences, f)
		case 3:
			r.Language = f.asString()
		}
		return err
	})
}
