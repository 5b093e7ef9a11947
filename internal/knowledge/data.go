package knowledge

import "github.com/onewindow/helpdesk-go/internal/model"

// LoadDefault installs the built-in FAQ sets. They can be replaced at
// startup via LoadFile.
func (s *Store) LoadDefault() {
	s.SetEntries(model.LanguageRussian, defaultFAQRussian)
	s.SetEntries(model.LanguageKazakh, defaultFAQKazakh)
}

var defaultFAQRussian = []Entry{
	{
		Question: "Как подключиться к VPN?",
		Answer:   "Чтобы подключиться к VPN, выполните следующие шаги:\n1. Откройте приложение VPN Client\n2. Введите ваши учетные данные\n3. Выберите сервер и нажмите 'Подключить'\n4. Дождитесь успешного подключения",
	},
	{
		Question: "Как сменить пароль?",
		Answer:   "Для смены пароля перейдите на портал самообслуживания:\n1. Зайдите на portal.company.com\n2. Войдите с текущим паролем\n3. Перейдите в раздел 'Безопасность'\n4. Нажмите 'Изменить пароль'\n5. Следуйте инструкциям на экране",
	},
	{
		Question: "Не работает почта Outlook",
		Answer:   "Попробуйте следующие решения:\n1. Перезапустите Outlook\n2. Проверьте интернет-соединение\n3. Убедитесь, что пароль не истек\n4. Проверьте настройки прокси-сервера\n5. Если проблема сохраняется - обратитесь в техподдержку",
	},
	{
		Question: "Забыл пароль от компьютера",
		Answer:   "Для сброса пароля:\n1. Обратитесь к администратору IT\n2. Подтвердите свою личность\n3. Администратор сбросит пароль\n4. Вы получите временный пароль по email или SMS",
	},
	{
		Question: "Проблемы с принтером",
		Answer:   "Проверьте следующее:\n1. Включен ли принтер\n2. Есть ли бумага и тонер/чернила\n3. Правильно ли подключен кабель\n4. Установлены ли драйверы\n5. Перезапустите очередь печати",
	},
	{
		Question: "Как получить доступ к общей папке?",
		Answer:   "Для получения доступа:\n1. Отправьте запрос руководителю отдела\n2. Укажите причину и срок доступа\n3. После одобрения IT-отдел настроит доступ\n4. Вы получите уведомление по email",
	},
}

var defaultFAQKazakh = []Entry{
	{
		Question: "VPN-ге қалай қосылуға болады?",
		Answer:   "VPN-ге қосылу үшін келесі қадамдарды орындаңыз:\n1. VPN Client қосымшасын ашыңыз\n2. Тіркелгі деректеріңізді енгізіңіз\n3. Серверді таңдап, 'Қосылу' түймесін басыңыз\n4. Сәтті қосылуды күтіңіз",
	},
	{
		Question: "Құпия сөзді қалай өзгертуге болады?",
		Answer:   "Құпия сөзді өзгерту үшін өзіндік қызмет порталына өтіңіз:\n1. portal.company.com сайтына кіріңіз\n2. Ағымдағы құпия сөзбен кіріңіз\n3. 'Қауіпсіздік' бөліміне өтіңіз\n4. 'Құпия сөзді өзгерту' түймесін басыңыз\n5. Экрандағы нұсқауларды орындаңыз",
	},
	{
		Question: "Outlook поштасы жұмыс істемейді",
		Answer:   "Келесі шешімдерді қолданып көріңіз:\n1. Outlook-ты қайта іске қосыңыз\n2. Интернет байланысын тексеріңіз\n3. Құпия сөз мерзімі өтпегеніне көз жеткізіңіз\n4. Прокси-сервер параметрлерін тексеріңіз\n5. Егер мәселе жалғасса - техникалық қолдау қызметіне хабарласыңыз",
	},
}
