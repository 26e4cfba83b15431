package m3u8

/*
All Section definitions and references are from RFC 8216 Protocol Version 7

4.1.  Definition of a Playlist

  Playlists MUST be encoded in UTF-8 [RFC3629].  They MUST NOT contain
  any Byte Order Mark (BOM); clients SHOULD fail to parse Playlists
  that contain a BOM or do not parse as UTF-8.  Playlists MUST NOT
  contain UTF-8 control characters (U+0000 to U+001F and U+007F to
  U+009F), with the exceptions of CR (U+000D) and LF (U+000A).

  Lines in a Playlist can be either a URI, a blank, or start with the
  character '#'.  Blank lines are ignored.  Whitespace MUST NOT be
  present, except for elements in which it is explicitly specified.

  Lines that start with the character '#' are either comments or tags.
  Tags begin with #EXT.  They are case sensitive.  All other lines that
  begin with '#' are comments and SHOULD be ignored.


-----     byte classes used by the validator automaton
0x00-0x1F   control (except 0x0A, 0x0D)      reject
0x0A 0x0D   line terminators                 accept
0x20-0x7E   ascii                            accept
0x7F        DEL                              reject
0x80-0xBF   10xxxxxx continuation            reject unless expected
0xC0-0xDF   110xxxxx lead of 2               expect 1 continuation
0xE0-0xEF   1110xxxx lead of 3               expect 2 continuations
0xF0-0xF7   11110xxx lead of 4               expect 3 continuations
0xF8-0xFF   not a lead byte                  reject

Overlong forms (C0 80) and surrogates (ED A0 80) are accepted, the
automaton only looks at bit patterns.


-----     classification
#EXTM3U                       Tag
#EXTINF:10,                   Tag
#EXT-X-TARGETDURATION:15      Tag
# just a comment              Comment
#EX                           Comment (too short for #EXT)
#ext-x-version:3              Comment (tags are case sensitive)
segment1.ts                   URI
https://example.com/a.ts      URI
(empty)                       Blank
*/
