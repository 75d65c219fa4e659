package domain

// 访问策略：纯函数，只依据笔记归属和共享授权作判定。
// 返回布尔值而不是错误，由调用方决定映射为 403 还是 404 类结果。

// CanRead 判断用户是否可读取笔记
// 所有者可读；任意权限级别的共享授权均可读
func CanRead(uid int64, note *Note, grants []*NoteShare) bool {
	if note == nil {
		return false
	}
	if note.IsOwnedBy(uid) {
		return true
	}
	for _, g := range grants {
		if g == nil {
			continue
		}
		if g.NoteID == note.ID && g.TargetUID == uid {
			return true
		}
	}
	return false
}

// CanWrite 判断用户是否可修改笔记
// 所有者可写；仅携带编辑能力的共享授权可写
func CanWrite(uid int64, note *Note, grants []*NoteShare) bool {
	if note == nil {
		return false
	}
	if note.IsOwnedBy(uid) {
		return true
	}
	for _, g := range grants {
		if g == nil {
			continue
		}
		if g.NoteID == note.ID && g.TargetUID == uid && g.AllowsWrite() {
			return true
		}
	}
	return false
}

// CanToggle 判断用户是否可切换笔记状态（置顶/收藏/归档）
// 仅所有者可操作，编辑授权不包含状态切换
func CanToggle(uid int64, note *Note) bool {
	if note == nil {
		return false
	}
	return note.IsOwnedBy(uid)
}

// CanShare 判断用户是否可将笔记共享给他人
// 仅所有者可共享
func CanShare(uid int64, note *Note) bool {
	if note == nil {
		return false
	}
	return note.IsOwnedBy(uid)
}
