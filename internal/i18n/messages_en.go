package i18n

var messagesEN = map[string]string{
	// 表单字段错误
	"form.required":               "This field is required.",
	"form.too_long":               "The value is too long.",
	"form.password_mismatch":      "The two password fields didn't match.",
	"form.username_invalid":       "Enter a valid username: letters, digits and @/./+/-/_ only.",
	"form.username_taken":         "A user with that username already exists.",
	"form.invalid_email":          "Enter a valid email address.",
	"form.old_password_incorrect": "Your old password was entered incorrectly.",
	"form.invalid_choice":         "Select a valid choice.",
	"form.invalid_date":           "Enter a valid date and time.",
	"form.slug_invalid":           "Use only Latin letters, digits, hyphens and underscores.",
	"form.image_too_large":        "The image file is too large.",
	"form.image_type":             "Upload a valid image. The file is not a supported image type.",
	"form.image_dimension":        "The image dimensions are too large.",
	"form.image_invalid":          "Upload a valid image. The file is either not an image or corrupted.",
	"form.captcha_required":       "Enter the characters shown in the picture.",
	"form.captcha_invalid":        "The characters do not match the picture.",
	"form.invalid_credentials":    "Please enter a correct username and password. Both fields may be case-sensitive.",
	"form.user_disabled":          "This account is inactive.",

	// 密码策略
	"error.password_min_length":      "Password must be at least %d characters.",
	"error.password_require_upper":   "Password must contain an uppercase letter.",
	"error.password_require_lower":   "Password must contain a lowercase letter.",
	"error.password_require_number":  "Password must contain a digit.",
	"error.password_require_special": "Password must contain a special character.",

	// 通用错误
	"error.bad_request":       "Bad request.",
	"error.unauthorized":      "Authentication required.",
	"error.forbidden":         "You do not have permission to perform this action.",
	"error.not_found":         "The page you requested does not exist.",
	"error.too_many_requests": "Too many requests. Please try again later.",
	"error.login_too_many":    "Too many login attempts. Please try again later.",
	"error.register_too_many": "Too many registration attempts. Please try again later.",
	"error.internal":          "Something went wrong on our side. Please try again later.",
	"error.validation_failed": "Please correct the errors below.",

	// 管理端
	"error.id_invalid":            "Invalid id.",
	"error.admin_id_invalid":      "Invalid admin id.",
	"error.admin_id_type_invalid": "Invalid admin id type.",
	"error.login_failed":          "Invalid username or password.",
	"error.token_invalid":         "Invalid or expired token.",
	"error.token_revoked":         "The session has been revoked.",
	"error.permission_denied":     "Permission denied.",
	"error.password_incorrect":    "The current password is incorrect.",
	"error.password_weak":         "The password does not satisfy the password policy.",
	"error.admin_exists":          "An administrator with that username already exists.",
	"error.admin_not_found":       "Administrator not found.",
	"error.role_invalid":          "Invalid role.",
	"error.slug_exists":           "The slug is already in use.",
	"error.category_not_found":    "Category not found.",
	"error.location_not_found":    "Location not found.",
	"error.post_not_found":        "Post not found.",
	"error.comment_not_found":     "Comment not found.",
	"error.user_not_found":        "User not found.",
	"error.fetch_failed":          "Failed to load data.",
	"error.save_failed":           "Failed to save.",
	"error.delete_failed":         "Failed to delete.",
	"error.authz_failed":          "Failed to update permissions.",

	// 导航
	"ui.nav.home":            "Home",
	"ui.nav.about":           "About",
	"ui.nav.rules":           "Rules",
	"ui.nav.create_post":     "New post",
	"ui.nav.password_change": "Change password",
	"ui.nav.logout":          "Log out",
	"ui.nav.login":           "Log in",
	"ui.nav.registration":    "Sign up",

	// 列表与分页
	"ui.index.heading":        "Latest posts",
	"ui.feed.empty":           "No posts yet.",
	"ui.pagination.first":     "first",
	"ui.pagination.previous":  "previous",
	"ui.pagination.next":      "next",
	"ui.pagination.last":      "last",
	"ui.pagination.current":   "Page %d of %d",
	"ui.profile.joined":       "joined %s",
	"ui.profile.edit":         "Edit profile",
	"ui.post.unpublished":     "Hidden by author",
	"ui.post.category_hidden": "Category hidden",
	"ui.post.comment_count":   "Comments: %d",

	// 文章表单
	"ui.post.edit":           "Edit",
	"ui.post.delete":         "Delete",
	"ui.post.delete_confirm": "Are you sure you want to delete this post? Its comments will be deleted too.",
	"ui.post.title":          "Title",
	"ui.post.text":           "Text",
	"ui.post.markdown_hint":  "Markdown is supported.",
	"ui.post.pub_date":       "Publication date",
	"ui.post.pub_date_hint":  "Set a date in the future to schedule the post.",
	"ui.post.category":       "Category",
	"ui.post.location":       "Location",
	"ui.post.image":          "Image",
	"ui.post.image_clear":    "Remove current image",
	"ui.post.is_published":   "Published",

	// 评论
	"ui.comment.heading":          "Comments",
	"ui.comment.text":             "Comment",
	"ui.comment.submit":           "Send",
	"ui.comment.login_to_comment": "Log in to leave a comment.",
	"ui.comment.edit":             "Edit",
	"ui.comment.delete":           "Delete",
	"ui.comment.empty":            "No comments yet.",
	"ui.comment.delete_confirm":   "Are you sure you want to delete this comment?",

	// 表单通用
	"ui.form.save":    "Save",
	"ui.form.cancel":  "Cancel",
	"ui.form.captcha": "Characters from the picture",

	// 字段
	"ui.field.username":         "Username",
	"ui.field.password":         "Password",
	"ui.field.password_confirm": "Password confirmation",
	"ui.field.old_password":     "Old password",
	"ui.field.new_password":     "New password",
	"ui.field.first_name":       "First name",
	"ui.field.last_name":        "Last name",
	"ui.field.email":            "Email address",

	// 认证
	"ui.auth.login_submit":           "Log in",
	"ui.auth.register_submit":        "Sign up",
	"ui.auth.password_change_submit": "Change password",
	"ui.auth.no_account":             "No account yet? Sign up.",
	"ui.auth.has_account":            "Already registered? Log in.",

	// 页面标题
	"ui.title.post_create":     "New post",
	"ui.title.post_edit":       "Edit post",
	"ui.title.post_delete":     "Delete post",
	"ui.title.comment_edit":    "Edit comment",
	"ui.title.comment_delete":  "Delete comment",
	"ui.title.profile_edit":    "Edit profile",
	"ui.title.login":           "Log in",
	"ui.title.registration":    "Sign up",
	"ui.title.password_change": "Change password",
	"ui.title.about":           "About",
	"ui.title.rules":           "Rules",
	"ui.title.error":           "Error",

	// 静态页
	"ui.page.about_body": "Blogicum is a small blogging platform.\n\nWrite posts, schedule them for later, attach a picture and discuss them with other readers.",
	"ui.page.rules_body": "1. Be polite to other users.\n2. Do not publish content you have no rights to.\n3. Authors are responsible for their posts and comments.\n\nPosts breaking the rules may be hidden by moderators.",
}
