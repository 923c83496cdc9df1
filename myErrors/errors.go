package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrNotArticleOwner 表示当前用户不是文章作者，无权执行修改或删除
var ErrNotArticleOwner = errors.New("article: operator is not the owner")
