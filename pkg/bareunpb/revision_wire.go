package bareunpb

func (c *RevisionConfig) appendWire(b []byte) []byte {
	if c == nil {
		return b
	}
	b = appendBool(b, 1, c.DisableSplitSentence)
	b = appendBool(b, 2, c.DisableCaretSpacing)
	b = appendBool(b, 3, c.DisableVxSpacing)
	b = appendBool(b, 4, c.EnableSentenceCheck)
	return appendBool(b, 5, c.EnableCleanupWhitespace)
}

func (c *RevisionConfig) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			c.DisableSplitSentence = f.asBool()
		case 2:
			c.DisableCaretSpacing = f.asBool()
		case 3:
			c.DisableVxSpacing = f.asBool()
		case 4:
			c.EnableSentenceCheck = f.asBool()
		case 5:
			c.EnableCleanupWhitespace = f.asBool()
		}
		return nil
	})
}

func (r *CorrectErrorRequest) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendMessage(b, 1, r.Document)
	b = appendInt32(b, 2, int32(r.EncodingType))
	b = appendString(b, 3, r.CustomDomain)
	b = appendStrings(b, 4, r.CustomDictNames)
	return appendMessage(b, 5, r.Config)
}

func (r *CorrectErrorRequest) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.Document, err = consumeMessage[*Document](f)
		case 2:
			r.EncodingType = EncodingType(f.asInt32())
		case 3:
			r.CustomDomain = f.asString()
		case 4:
			r.CustomDictNames = append(r.CustomDictNames, f.asString())
		case 5:
			r.Config, err = consumeMessage[*RevisionConfig](f)
		}
		return err
	})
}

func (s *RevisedSentence) appendWire(b []byte) []byte {
	if s == nil {
		return b
	}
	b = appendString(b, 1, s.Origin)
	return appendString(b, 2, s.Revised)
}

func (s *RevisedSentence) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			s.Origin = f.asString()
		case 2:
			s.Revised = f.asString()
		}
		return nil
	})
}

func (r *Revision) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendString(b, 1, r.Revised)
	b = appendString(b, 2, r.Category)
	return appendString(b, 3, r.HelpID)
}

func (r *Revision) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			r.Revised = f.asString()
		case 2:
			r.Category = f.asString()
		case 3:
			r.HelpID = f.asString()
		}
		return nil
	})
}

func (r *RevisedBlock) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendMessage(b, 1, r.Origin)
	b = appendString(b, 2, r.Revised)
	return appendMessages(b, 3, r.Revisions)
}

func (r *RevisedBlock) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.Origin, err = consumeMessage[*TextSpan](f)
		case 2:
			r.Revised = f.asString()
		case 3:
			r.Revisions, err = appendConsumed(r.Revisions, f)
		}
		return err
	})
}

func (h *CorrectionHelp) appendWire(b []byte) []byte {
	if h == nil {
		return b
	}
	b = appendString(b, 1, h.ID)
	b = appendString(b, 2, h.Comment)
	return appendStrings(b, 3, h.Examples)
}

func (h *CorrectionHelp) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			h.ID = f.asString()
		case 2:
			h.Comment = f.asString()
		case 3:
			h.Examples = append(h.Examples, f.asString())
		}
		return nil
	})
}

func (c *CleanupRange) appendWire(b []byte) []byte {
	if c == nil {
		return b
	}
	b = appendInt32(b, 1, c.Offset)
	b = appendInt32(b, 2, c.Length)
	return appendString(b, 3, c.Position)
}

func (c *CleanupRange) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) error {
		switch f.num {
		case 1:
			c.Offset = f.asInt32()
		case 2:
			c.Length = f.asInt32()
		case 3:
			c.Position = f.asString()
		}
		return nil
	})
}

func (r *CorrectErrorResponse) appendWire(b []byte) []byte {
	if r == nil {
		return b
	}
	b = appendString(b, 1, r.Origin)
	b = appendString(b, 2, r.Revised)
	b = appendMessages(b, 3, r.RevisedSentences)
	b = appendMessages(b, 4, r.RevisedBlocks)
	b = appendMap(b, 5, r.Helps, func(entry []byte, h *CorrectionHelp) []byte {
		if h == nil {
			h = &CorrectionHelp{}
		}
		return appendMessage(entry, 2, h)
	})
	return appendMessages(b, 6, r.WhitespaceCleanupRanges)
}

func (r *CorrectErrorResponse) unmarshalWire(b []byte) error {
	return eachField(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.Origin = f.asString()
		case 2:
			r.Revised = f.asString()
		case 3:
			r.RevisedSentences, err = appendConsumed(r.RevisedSentences, f)
		case 4:
			r.RevisedBlocks, err = appendConsumed(r.RevisedBlocks, f)
		case 5:
			key, value, err := consumeEntry(f)
			if err != nil {
				return err
			}
			help, err := consumeMessage[*CorrectionHelp](value)
			if err != nil {
				return err
			}
			if help == nil {
				help = &CorrectionHelp{}
			}
			if r.Helps == nil {
				r.Helps = map[string]*CorrectionHelp{}
			}
			r.Helps[key] = help
		case 6:
			r.WhitespaceCleanupRanges, err = appendConsumed(r.WhitespaceCleanupRanges, f)
		}
		return err
	})
}
