package i18n

var messagesRU = map[string]string{
	"form.required":               "Обязательное поле.",
	"form.too_long":               "Слишком длинное значение.",
	"form.password_mismatch":      "Введённые пароли не совпадают.",
	"form.username_invalid":       "Введите правильное имя пользователя: только буквы, цифры и символы @/./+/-/_.",
	"form.username_taken":         "Пользователь с таким именем уже существует.",
	"form.invalid_email":          "Введите правильный адрес электронной почты.",
	"form.old_password_incorrect": "Ваш старый пароль введён неправильно.",
	"form.invalid_choice":         "Выберите корректный вариант.",
	"form.invalid_date":           "Введите правильную дату и время.",
	"form.slug_invalid":           "Используйте только латиницу, цифры, дефис и подчёркивание.",
	"form.image_too_large":        "Файл изображения слишком большой.",
	"form.image_type":             "Загрузите правильное изображение. Формат файла не поддерживается.",
	"form.image_dimension":        "Слишком большие размеры изображения.",
	"form.image_invalid":          "Загрузите правильное изображение. Файл не является изображением или повреждён.",
	"form.captcha_required":       "Введите символы с картинки.",
	"form.captcha_invalid":        "Символы не совпадают с картинкой.",
	"form.invalid_credentials":    "Пожалуйста, введите правильные имя пользователя и пароль. Оба поля могут быть чувствительны к регистру.",
	"form.user_disabled":          "Эта учётная запись отключена.",

	"error.password_min_length":      "Пароль должен содержать не менее %d символов.",
	"error.password_require_upper":   "Пароль должен содержать заглавную букву.",
	"error.password_require_lower":   "Пароль должен содержать строчную букву.",
	"error.password_require_number":  "Пароль должен содержать цифру.",
	"error.password_require_special": "Пароль должен содержать специальный символ.",

	"error.bad_request":       "Некорректный запрос.",
	"error.unauthorized":      "Требуется авторизация.",
	"error.forbidden":         "У вас нет прав для этого действия.",
	"error.not_found":         "Страница не найдена.",
	"error.too_many_requests": "Слишком много запросов. Попробуйте позже.",
	"error.login_too_many":    "Слишком много попыток входа. Попробуйте позже.",
	"error.register_too_many": "Слишком много попыток регистрации. Попробуйте позже.",
	"error.internal":          "Ошибка сервера. Попробуйте позже.",
	"error.validation_failed": "Исправьте ошибки в форме.",

	"ui.nav.home":            "Главная",
	"ui.nav.about":           "О проекте",
	"ui.nav.rules":           "Правила",
	"ui.nav.create_post":     "Новая публикация",
	"ui.nav.password_change": "Изменить пароль",
	"ui.nav.logout":          "Выйти",
	"ui.nav.login":           "Войти",
	"ui.nav.registration":    "Регистрация",

	"ui.index.heading":        "Лента записей",
	"ui.feed.empty":           "Публикаций пока нет.",
	"ui.pagination.first":     "первая",
	"ui.pagination.previous":  "назад",
	"ui.pagination.next":      "вперёд",
	"ui.pagination.last":      "последняя",
	"ui.pagination.current":   "Страница %d из %d",
	"ui.profile.joined":       "с нами с %s",
	"ui.profile.edit":         "Редактировать профиль",
	"ui.post.unpublished":     "Снято с публикации",
	"ui.post.category_hidden": "Категория скрыта",
	"ui.post.comment_count":   "Комментариев: %d",

	"ui.post.edit":           "Редактировать",
	"ui.post.delete":         "Удалить",
	"ui.post.delete_confirm": "Удалить публикацию? Комментарии к ней тоже будут удалены.",
	"ui.post.title":          "Заголовок",
	"ui.post.text":           "Текст",
	"ui.post.markdown_hint":  "Поддерживается Markdown.",
	"ui.post.pub_date":       "Дата и время публикации",
	"ui.post.pub_date_hint":  "Если установить дату и время в будущем — можно делать отложенные публикации.",
	"ui.post.category":       "Категория",
	"ui.post.location":       "Местоположение",
	"ui.post.image":          "Изображение",
	"ui.post.image_clear":    "Удалить текущее изображение",
	"ui.post.is_published":   "Опубликовано",

	"ui.comment.heading":          "Комментарии",
	"ui.comment.text":             "Комментарий",
	"ui.comment.submit":           "Отправить",
	"ui.comment.login_to_comment": "Войдите, чтобы оставить комментарий.",
	"ui.comment.edit":             "Редактировать",
	"ui.comment.delete":           "Удалить",
	"ui.comment.empty":            "Комментариев пока нет.",
	"ui.comment.delete_confirm":   "Удалить комментарий?",

	"ui.form.save":    "Сохранить",
	"ui.form.cancel":  "Отмена",
	"ui.form.captcha": "Символы с картинки",

	"ui.field.username":         "Имя пользователя",
	"ui.field.password":         "Пароль",
	"ui.field.password_confirm": "Подтверждение пароля",
	"ui.field.old_password":     "Старый пароль",
	"ui.field.new_password":     "Новый пароль",
	"ui.field.first_name":       "Имя",
	"ui.field.last_name":        "Фамилия",
	"ui.field.email":            "Адрес электронной почты",

	"ui.auth.login_submit":           "Войти",
	"ui.auth.register_submit":        "Зарегистрироваться",
	"ui.auth.password_change_submit": "Изменить пароль",
	"ui.auth.no_account":             "Нет аккаунта? Зарегистрируйтесь.",
	"ui.auth.has_account":            "Уже зарегистрированы? Войдите.",

	"ui.title.post_create":     "Новая публикация",
	"ui.title.post_edit":       "Редактирование публикации",
	"ui.title.post_delete":     "Удаление публикации",
	"ui.title.comment_edit":    "Редактирование комментария",
	"ui.title.comment_delete":  "Удаление комментария",
	"ui.title.profile_edit":    "Редактирование профиля",
	"ui.title.login":           "Вход",
	"ui.title.registration":    "Регистрация",
	"ui.title.password_change": "Изменение пароля",
	"ui.title.about":           "О проекте",
	"ui.title.rules":           "Правила",
	"ui.title.error":           "Ошибка",

	"ui.page.about_body": "Блогикум — небольшая платформа для ведения блогов.\n\nПишите публикации, откладывайте их на потом, прикрепляйте изображения и обсуждайте их с читателями.",
	"ui.page.rules_body": "1. Будьте вежливы с другими пользователями.\n2. Не публикуйте материалы, на которые у вас нет прав.\n3. Авторы отвечают за свои публикации и комментарии.\n\nПубликации, нарушающие правила, могут быть скрыты модераторами.",
}
