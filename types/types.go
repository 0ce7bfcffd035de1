// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package types contains the canonical forum entities produced by the
// exporter.  The JSON field names are the ones expected by the forum import
// pipeline.
package types

import (
	"cmp"
	"slices"
)

// User is a forum account.
type User struct {
	UID               int64   `json:"_uid"`
	Username          string  `json:"_username"`
	RegistrationEmail string  `json:"_registrationEmail"`
	Level             string  `json:"_level"`
	JoinDate          int64   `json:"_joindate"`
	Banned            bool    `json:"_banned"`
	Email             string  `json:"_email"`
	Signature         string  `json:"_signature"`
	Website           string  `json:"_website"`
	Picture           string  `json:"_picture"`
	ShowEmail         bool    `json:"_showemail"`
	LastPostTime      int64   `json:"_lastposttime"`
	ReadTIDs          []int64 `json:"_readTids"`
	PostCount         int64   `json:"_postcount"`
	Birthday          string  `json:"_birthday"`
}

// Category is a forum category.
type Category struct {
	CID         int64  `json:"_cid"`
	Name        string `json:"_name"`
	Description string `json:"_description"`
	Timestamp   int64  `json:"_timestamp"`
}

// Room is a private conversation between several users.
type Room struct {
	RoomID    int64   `json:"_roomId"`
	UID       int64   `json:"_uid"`
	UIDs      []int64 `json:"_uids"`
	RoomName  string  `json:"_roomName"`
	Timestamp int64   `json:"_timestamp"`
}

// Message is a single message in a Room.
type Message struct {
	MID       int64  `json:"_mid"`
	RoomID    int64  `json:"_roomId"`
	FromUID   int64  `json:"_fromuid"`
	Content   string `json:"_content"`
	Timestamp int64  `json:"_timestamp"`
}

// Topic is a discussion thread in a Category.  Content is the opening post
// of the thread.
type Topic struct {
	TID         int64    `json:"_tid"`
	CID         int64    `json:"_cid"`
	UID         int64    `json:"_uid"`
	ViewCount   int64    `json:"_viewcount"`
	Title       string   `json:"_title"`
	Timestamp   int64    `json:"_timestamp"`
	Edited      int64    `json:"_edited"`
	Pinned      bool     `json:"_pinned"`
	Images      []string `json:"_images"`
	Attachments []string `json:"_attachments"`
	Content     string   `json:"_content"`
}

// Post is a reply in a Topic.
type Post struct {
	PID         int64    `json:"_pid"`
	TID         int64    `json:"_tid"`
	ReplyingTo  int64    `json:"_post_replying_to"`
	Timestamp   int64    `json:"_timestamp"`
	Edited      int64    `json:"_edited"`
	Content     string   `json:"_content"`
	UID         int64    `json:"_uid"`
	Images      []string `json:"_images"`
	Attachments []string `json:"_attachments"`
	Markup      string   `json:"_markup"`
}

// Vote is an up or down vote on a post or a topic.  Exactly one of PID and
// TID is set.
type Vote struct {
	VID    string `json:"_vid"`
	PID    *int64 `json:"_pid"`
	TID    *int64 `json:"_tid"`
	UID    int64  `json:"_uid"`
	Action int    `json:"_action"`
}

// Vote actions.
const (
	Upvote   = 1
	Downvote = -1
)

// Bookmark is the reading position of a user in a topic.
type Bookmark struct {
	BID   string `json:"_bid"`
	TID   int64  `json:"_tid"`
	UID   int64  `json:"_uid"`
	Index int64  `json:"_index"`
}

type (
	Users      map[int64]User
	Categories map[int64]Category
	Rooms      map[int64]Room
	Messages   map[int64]Message
	Topics     map[int64]Topic
	Posts      map[int64]Post
	Votes      map[string]Vote
	Bookmarks  map[string]Bookmark
)

// Keys returns the sorted keys of the map.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	var out = make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
